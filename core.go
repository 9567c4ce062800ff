package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gosally/internal/fileinput"
	"github.com/jcorbin/gosally/internal/flushio"
	"github.com/jcorbin/gosally/internal/panicerr"
)

// core holds the interpreter's connections to the outside world: input
// lines, program output, diagnostics, and trace logging.
type core struct {
	logging
	diagfn func(mess string, args ...interface{})

	input   fileinput.Input
	lines   LineReader
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close closes any resources acquired by options, like test output tees.
func (ioc *core) Close() (err error) {
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

// readLine flushes any pending output before reading the next input line,
// so that prompts and partial output are seen before input blocks.
func (ioc *core) readLine() (string, error) {
	if err := ioc.out.Flush(); err != nil {
		return "", err
	}
	if ioc.lines != nil {
		return ioc.lines.ReadLine()
	}
	return ioc.input.ReadLine()
}

func (ioc *core) write(s string) error {
	_, err := io.WriteString(ioc.out, s)
	return err
}

// diag reports a user facing diagnostic message.
func (ioc *core) diag(mess string, args ...interface{}) {
	if ioc.diagfn != nil {
		ioc.diagfn(mess, args...)
	}
}

// halt flushes output and reports how a run ended: the end of program
// summary for a normal end, or a diagnostic for an abnormal one. Returns nil
// for a normal end, err otherwise.
func (vm *VM) halt(err error) error {
	if ferr := vm.out.Flush(); ferr != nil && (err == nil || errors.Is(err, ErrEndOfProgram)) {
		err = ferr
	}

	if err == nil || errors.Is(err, ErrEndOfProgram) {
		vm.logf("#", "halt")
		vm.diag("End of Program")
		if n := vm.stack.size(); n == 0 {
			vm.diag("Parameter stack empty.")
		} else {
			vm.diag("Parameter stack has %v token(s).", n)
		}
		return nil
	}

	if vm.lines == nil && vm.input.Last.Name != "" {
		vm.logf("#", "last line read %v", &vm.input.Last)
	}
	switch {
	case errors.Is(err, ErrStackUnderflow):
		vm.logf("#", "halt underflow: %v", err)
		vm.diag("Parameter stack underflow: %v", err)

	default:
		vm.logf("#", "halt error: %v", err)
		if panicerr.IsPanic(err) {
			vm.logf("#", "%s", panicerr.PanicStack(err))
		}
		vm.diag("Unexpected failure: %v", err)
	}
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

// logf writes a trace line, when tracing is enabled, with the given mark
// padded out to the widest mark seen so far.
func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
