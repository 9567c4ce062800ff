package main

import (
	"context"
	"io"

	"github.com/jcorbin/gosally/internal/panicerr"
)

// New creates a VM with all built-ins seeded; with no options, it reads no
// input and discards all output.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	vm.init()
	return &vm
}

// Run evaluates input until it is exhausted, or until an error halts the
// run. Reaching the end of input is a normal end, and Run returns nil;
// otherwise the halting error is returned. Either way a diagnostic summary is
// written, and the VM may not be run again.
func (vm *VM) Run(ctx context.Context) error {
	if vm.ran {
		return ErrAlreadyRan
	}
	vm.ran = true
	vm.init()
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	return vm.halt(err)
}

// WithInput queues a stream of program lines; streams are read in the order
// given.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithLineReader sets a source of program lines that takes the place of any
// input streams. If it implements io.Closer, VM.Close will close it.
func WithLineReader(lr LineReader) VMOption { return withLineReader(lr) }

// WithOutput sets where program output goes.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies program output to an additional writer.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithDiag writes diagnostic lines to w.
func WithDiag(w io.Writer) VMOption { return withDiag(w) }

// WithDiagf reports diagnostics through a printf-style function.
func WithDiagf(diagfn func(mess string, args ...interface{})) VMOption { return withDiagfn(diagfn) }

// WithLogf enables trace logging.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithStackLimit bounds the depth of the parameter stack; 0 means unbounded.
func WithStackLimit(limit int) VMOption { return withStackLimit(limit) }

// NamedReader gives a name to an input stream, used to locate input lines.
func NamedReader(name string, r io.Reader) io.Reader { return namedReader{r, name} }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
