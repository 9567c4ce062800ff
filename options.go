package main

import (
	"io"

	"github.com/jcorbin/gosally/internal/flushio"
	"github.com/jcorbin/gosally/internal/logio"
)

// VMOption configures a VM; see New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one; nil options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

var defaultOptions = VMOptions(
	withOutput(io.Discard),
)

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})
type withDiagfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM)   { vm.logfn = logfn }
func (diagfn withDiagfn) apply(vm *VM) { vm.diagfn = diagfn }

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type diagOption struct{ io.Writer }
type stackLimitOption int

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withLineReader(lr LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withDiag(w io.Writer) diagOption               { return diagOption{w} }
func withStackLimit(limit int) stackLimitOption     { return stackLimitOption(limit) }

// inputs queue up in order, after any prior input
func (i inputOption) apply(vm *VM) {
	vm.input.Queue = append(vm.input.Queue, i.Reader)
}

// a line reader replaces any queued input
func (lr lineReaderOption) apply(vm *VM) {
	vm.lines = lr.LineReader
	if cl, ok := lr.LineReader.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	wf := flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
	vm.out = flushio.WriteFlushers(vm.out, wf)
}

func (o diagOption) apply(vm *VM) {
	var log logio.Logger
	log.SetOutput(o.Writer)
	vm.diagfn = log.Leveledf("")
}

func (lim stackLimitOption) apply(vm *VM) {
	vm.stack.limit = int(lim)
}
