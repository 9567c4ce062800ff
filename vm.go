package main

import (
	"context"
	"fmt"

	"github.com/jcorbin/gosally/internal/flushio"
)

// VM is a Sally interpreter: it pulls tokens from input lines, pushes
// literals onto its parameter stack, and dispatches words through its symbol
// table. A VM runs once; see Run.
type VM struct {
	core

	src     tokenSource
	stack   stack
	symbols symbols

	ran bool
}

// init seeds built-in symbols and wires the token source to input; it is
// safe to call more than once.
func (vm *VM) init() {
	if vm.out == nil {
		vm.out = flushio.Discard
	}
	vm.src.readLine = vm.readLine
	vm.src.logf = vm.logf
	if vm.symbols.table == nil {
		for _, b := range builtins {
			vm.symbols.define(b.name, symbol{kind: keywordSymbol, op: b.op})
		}
	}
}

func (vm *VM) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, err := vm.src.next()
		if err != nil {
			return err
		}
		if err := vm.dispatch(tok); err != nil {
			return err
		}
	}
}

// dispatch evaluates one token: literals are pushed, built-ins are invoked,
// variable names are pushed as variable tokens, and anything else is pushed
// as is.
func (vm *VM) dispatch(tok Token) error {
	if vm.logfn != nil {
		vm.logf(">", "%v -- s:%v", tok, vm.stack.values())
	}

	switch tok.Kind {
	case IntegerToken, StringToken:
		return vm.stack.push(tok)
	}

	sym, defined := vm.symbols.lookup(tok.Text)
	switch {
	case !defined:
		return vm.stack.push(tok)
	case sym.kind == keywordSymbol:
		return sym.op(vm)
	case sym.kind == variableSymbol:
		tok.Kind = VariableToken
		return vm.stack.push(tok)
	default:
		return fmt.Errorf("invalid symbol kind %v for %q", sym.kind, tok.Text)
	}
}
