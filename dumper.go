package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gosally/internal/logio"
)

// Symbol   Name    Function
//   DUMP   dump    write the state of the VM to the diagnostic output
func (vm *VM) dump() error {
	lw := &logio.Writer{Logf: vm.diag}
	defer lw.Close()
	vmDumper{vm: vm, out: lw}.dump()
	return nil
}

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	if vm := dump.vm; vm.lines == nil && vm.input.Last.Name != "" {
		fmt.Fprintf(dump.out, "  input: %v\n", &vm.input.Last)
	}
	dump.dumpStack()
	dump.dumpVariables()
	dump.dumpTokens()
}

func (dump vmDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack.values())
}

func (dump vmDumper) dumpVariables() {
	names := dump.vm.symbols.variables()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Variables\n")
	for _, name := range names {
		value, _ := dump.vm.symbols.fetch(name)
		fmt.Fprintf(dump.out, "  %v = %v\n", name, value)
	}
}

func (dump vmDumper) dumpTokens() {
	fmt.Fprintf(dump.out, "  pending: %v\n", dump.vm.src.pending)
	for i, rec := range dump.vm.src.recordings {
		fmt.Fprintf(dump.out, "  recording[%v]: %v\n", i, rec)
	}
}
