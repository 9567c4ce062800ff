package main

import "strconv"

// builtins seeds the symbol table of every new VM.
var builtins = []struct {
	name string
	op   func(vm *VM) error
}{
	{"+", (*VM).add},
	{"-", (*VM).sub},
	{"*", (*VM).mul},
	{"/", (*VM).div},
	{"%", (*VM).mod},
	{"NEG", (*VM).neg},

	{".", (*VM).dot},
	{"SP", (*VM).sp},
	{"CR", (*VM).cr},

	{"DUP", (*VM).dup},
	{"DROP", (*VM).drop},
	{"SWAP", (*VM).swap},
	{"ROT", (*VM).rot},

	{"==", (*VM).eq},
	{"!=", (*VM).ne},
	{"<", (*VM).lt},
	{"<=", (*VM).le},
	{">", (*VM).gt},
	{">=", (*VM).ge},

	{"AND", (*VM).and},
	{"OR", (*VM).or},
	{"NOT", (*VM).not},

	{"SET", (*VM).set},
	{"@", (*VM).fetch},
	{"!", (*VM).store},

	{"IFTHEN", (*VM).ifthen},
	{"ELSE", (*VM).elseBranch},
	{"ENDIF", (*VM).endif},
	{"DO", (*VM).do},
	{"UNTIL", (*VM).until},

	{"DUMP", (*VM).dump},
}

//// Integer Operations

// Symbol   Name       Function
//    +     add        pop b then a, push a + b
//    -     subtract   pop b then a, push a - b
//    *     multiply   pop b then a, push a * b
//    /     divide     pop b then a, push a / b
//    %     modulus    pop b then a, push a % b
//   NEG    negate     pop a, push -a
func (vm *VM) add() error { return vm.binop("+", func(a, b int) int { return a + b }) }
func (vm *VM) sub() error { return vm.binop("-", func(a, b int) int { return a - b }) }
func (vm *VM) mul() error { return vm.binop("*", func(a, b int) int { return a * b }) }
func (vm *VM) div() error { return vm.divop("/", func(a, b int) int { return a / b }) }
func (vm *VM) mod() error { return vm.divop("%", func(a, b int) int { return a % b }) }

func (vm *VM) neg() error {
	toks, err := vm.stack.take("NEG", 1)
	if err != nil {
		return err
	}
	return vm.stack.push(intToken(-toks[0].Value))
}

// binop pops the right operand b, then the left operand a, and pushes the
// integer result of f(a, b).
func (vm *VM) binop(op string, f func(a, b int) int) error {
	toks, err := vm.stack.take(op, 2)
	if err != nil {
		return err
	}
	b, a := toks[0].Value, toks[1].Value
	return vm.stack.push(intToken(f(a, b)))
}

func (vm *VM) divop(op string, f func(a, b int) int) error {
	if tok, err := vm.stack.top(); err == nil && tok.Value == 0 && vm.stack.size() >= 2 {
		return opError{op, ErrDivideByZero}
	}
	return vm.binop(op, f)
}

//// Output Operations

// Symbol   Name    Function
//    .     print   pop a token and write it: integers in decimal, anything
//                  else as its text
//   SP     space   write a space
//   CR     return  write a line break, and flush output
func (vm *VM) dot() error {
	toks, err := vm.stack.take(".", 1)
	if err != nil {
		return err
	}
	tok := toks[0]
	if tok.Kind == IntegerToken {
		return vm.write(strconv.Itoa(tok.Value))
	}
	return vm.write(tok.Text)
}

func (vm *VM) sp() error { return vm.write(" ") }

func (vm *VM) cr() error {
	if err := vm.write("\n"); err != nil {
		return err
	}
	return vm.out.Flush()
}

//// Stack Operations

func (vm *VM) dup() error {
	tok, err := vm.stack.top()
	if err != nil {
		return underflowError{"DUP", 1, 0}
	}
	return vm.stack.push(tok)
}

func (vm *VM) drop() error {
	_, err := vm.stack.take("DROP", 1)
	return err
}

func (vm *VM) swap() error {
	toks, err := vm.stack.take("SWAP", 2)
	if err != nil {
		return err
	}
	return vm.pushAll(toks...)
}

// ROT brings the third token up to the top: ( r q p -- q p r )
func (vm *VM) rot() error {
	toks, err := vm.stack.take("ROT", 3)
	if err != nil {
		return err
	}
	p, q, r := toks[0], toks[1], toks[2]
	return vm.pushAll(q, p, r)
}

func (vm *VM) pushAll(toks ...Token) error {
	for _, tok := range toks {
		if err := vm.stack.push(tok); err != nil {
			return err
		}
	}
	return nil
}

//// Comparison and Logic Operations

// Comparisons pop b then a, and push 1 if a OP b holds, 0 otherwise. Logic
// operations treat any non-zero value as true.
func (vm *VM) eq() error { return vm.compare("==", func(a, b int) bool { return a == b }) }
func (vm *VM) ne() error { return vm.compare("!=", func(a, b int) bool { return a != b }) }
func (vm *VM) lt() error { return vm.compare("<", func(a, b int) bool { return a < b }) }
func (vm *VM) le() error { return vm.compare("<=", func(a, b int) bool { return a <= b }) }
func (vm *VM) gt() error { return vm.compare(">", func(a, b int) bool { return a > b }) }
func (vm *VM) ge() error { return vm.compare(">=", func(a, b int) bool { return a >= b }) }

func (vm *VM) and() error { return vm.compare("AND", func(a, b int) bool { return a != 0 && b != 0 }) }
func (vm *VM) or() error  { return vm.compare("OR", func(a, b int) bool { return a != 0 || b != 0 }) }

func (vm *VM) not() error {
	toks, err := vm.stack.take("NOT", 1)
	if err != nil {
		return err
	}
	return vm.stack.push(intToken(boolInt(toks[0].Value == 0)))
}

func (vm *VM) compare(op string, f func(a, b int) bool) error {
	return vm.binop(op, func(a, b int) int { return boolInt(f(a, b)) })
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

//// Variable Operations

// Symbol   Name    Function
//   SET    define  pop name then value; create a new variable, unless name
//                  is already defined
//    @     fetch   pop name; push the variable's value
//    !     store   pop name then value; update an existing variable
//
// Misusing a name is reported, but does not halt the program.
func (vm *VM) set() error {
	toks, err := vm.stack.take("SET", 2)
	if err != nil {
		return err
	}
	name, value := toks[0].Text, toks[1].Value
	if !vm.symbols.set(name, value) {
		vm.diag("variable %v has already been set", name)
	}
	return nil
}

func (vm *VM) fetch() error {
	toks, err := vm.stack.take("@", 1)
	if err != nil {
		return err
	}
	name := toks[0].Text
	value, defined := vm.symbols.fetch(name)
	if !defined {
		vm.diag("variable %v not found", name)
	}
	return vm.stack.push(intToken(value))
}

func (vm *VM) store() error {
	toks, err := vm.stack.take("!", 2)
	if err != nil {
		return err
	}
	name, value := toks[0].Text, toks[1].Value
	if !vm.symbols.exchange(name, value) {
		vm.diag("variable %v has not been declared yet", name)
	}
	return nil
}
