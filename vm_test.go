package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gosally/internal/logio"
	"github.com/jcorbin/gosally/internal/panicerr"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	ops     []func(vm *VM) error
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error

	exclusive   bool
	nextInputID int
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...int) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		for _, value := range values {
			vm.stack.tokens = append(vm.stack.tokens, intToken(value))
		}
	}))
	return vmt
}

func (vmt vmTestCase) withTokens(line string) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack.tokens = tokenize(vm.stack.tokens, line)
	}))
	return vmt
}

func (vmt vmTestCase) withVariable(name string, value int) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.init()
		if !vm.symbols.exchange(name, value) {
			vm.symbols.set(name, value)
		}
	}))
	return vmt
}

func (vmt vmTestCase) withStackLimit(limit int) vmTestCase {
	vmt.opts = append(vmt.opts, WithStackLimit(limit))
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		name := t.Name() + "/input"
		if id := vmt.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		vmt.nextInputID++
		return WithInput(NamedReader(name, strings.NewReader(input)))
	})
	return vmt
}

func (vmt vmTestCase) withNamedInput(name string, input string) vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithInput(NamedReader(name, strings.NewReader(input)))
	})
	return vmt
}

func (vmt vmTestCase) withLines(lines ...string) vmTestCase {
	vmt.opts = append(vmt.opts, WithLineReader(&lineQueue{lines: lines}))
	return vmt
}

func (vmt vmTestCase) do(ops ...func(vm *VM) error) vmTestCase {
	vmt.ops = append(vmt.ops, ops...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

// expectStack expects integer values on the parameter stack, bottom first.
func (vmt vmTestCase) expectStack(values ...int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []int{}
		}
		have := make([]int, len(vm.stack.tokens))
		for i, tok := range vm.stack.tokens {
			have[i] = tok.Value
		}
		assert.Equal(t, values, have, "expected stack values")
	})
	return vmt
}

// expectTokens expects the parameter stack, bottom first, to hold tokens
// formatted like the given strings; see Token.String.
func (vmt vmTestCase) expectTokens(strs ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if strs == nil {
			strs = []string{}
		}
		assert.Equal(t, strs, vm.stack.values(), "expected stack tokens")
	})
	return vmt
}

func (vmt vmTestCase) expectVariable(name string, value int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		sym, defined := vm.symbols.lookup(name)
		if assert.True(t, defined, "expected %v to be defined", name) {
			assert.Equal(t, variableSymbol, sym.kind, "expected %v to be a variable", name)
			assert.Equal(t, value, sym.value, "expected %v value", name)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectBuiltin(name string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		sym, defined := vm.symbols.lookup(name)
		assert.True(t, defined, "expected %v to be defined", name)
		assert.Equal(t, keywordSymbol, sym.kind, "expected %v to be a built-in", name)
	})
	return vmt
}

func (vmt vmTestCase) expectPending(strs ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		have := make([]string, len(vm.src.pending))
		for i, tok := range vm.src.pending {
			have[i] = tok.String()
		}
		if strs == nil {
			strs = []string{}
		}
		assert.Equal(t, strs, have, "expected pending tokens")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDiag(diag string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithDiag(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, diag, out.String(), "expected diagnostics")
	})
	return vmt
}

func (vmt vmTestCase) withTestOutput() vmTestCase {
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	vm := vmt.buildVM(t)
	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, vm)
		}
	}()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(vmt.ops) == 0 {
		return vm.Run(ctx)
	}

	names := make([]string, len(vmt.ops))
	for i, op := range vmt.ops {
		names[i] = runtime.FuncForPC(reflect.ValueOf(op).Pointer()).Name()
	}
	return panicerr.Recover("vmTestCase.ops", func() error {
		vm.init()
		for i, op := range vmt.ops {
			vm.logf(">", "do[%v] %v", i, names[i])
			if err := op(vm); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return vm.out.Flush()
	})
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opt VMOption = WithLogf(t.Logf)
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opt = VMOptions(opt, impl(&vmt, t))
		case VMOption:
			opt = VMOptions(opt, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// utilities

// lineQueue is a LineReader over a fixed set of lines.
type lineQueue struct {
	lines  []string
	closed bool
}

func (lq *lineQueue) ReadLine() (string, error) {
	if len(lq.lines) == 0 {
		return "", io.EOF
	}
	line := lq.lines[0]
	lq.lines = lq.lines[1:]
	return line, nil
}

func (lq *lineQueue) Close() error {
	lq.closed = true
	return nil
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
