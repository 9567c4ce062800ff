package main

import "sort"

type symbolKind uint8

const (
	keywordSymbol symbolKind = iota + 1
	variableSymbol
)

// symbol is either a built-in operation or a variable holding an integer.
type symbol struct {
	kind  symbolKind
	value int
	op    func(vm *VM) error
}

type symbols struct {
	table map[string]symbol
}

func (sym symbols) lookup(name string) (symbol, bool) {
	s, defined := sym.table[name]
	return s, defined
}

// define binds name to s unless it is already bound.
func (sym *symbols) define(name string, s symbol) bool {
	if _, defined := sym.table[name]; defined {
		return false
	}
	if sym.table == nil {
		sym.table = make(map[string]symbol)
	}
	sym.table[name] = s
	return true
}

// set creates a new variable; it returns false, changing nothing, if name is
// already bound to a variable or a built-in.
func (sym *symbols) set(name string, value int) bool {
	return sym.define(name, symbol{kind: variableSymbol, value: value})
}

// fetch returns the value bound to name; built-ins have the value 0.
func (sym symbols) fetch(name string) (int, bool) {
	s, defined := sym.table[name]
	return s.value, defined
}

// exchange updates a bound name, returning false if it is unbound.
// The name becomes a variable even if it was bound to a built-in, which lets
// programs shadow built-ins.
func (sym *symbols) exchange(name string, value int) bool {
	if _, defined := sym.table[name]; !defined {
		return false
	}
	sym.table[name] = symbol{kind: variableSymbol, value: value}
	return true
}

// variables returns the names of all variables, sorted.
func (sym symbols) variables() []string {
	var names []string
	for name, s := range sym.table {
		if s.kind == variableSymbol {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
