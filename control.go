package main

//// Control Flow

// There is no parse tree: conditionals skip over raw tokens pulled from the
// token source, and loops replay tokens that were recorded as they were
// pulled.

// Symbol   Name     Function
//  IFTHEN  if       pop a condition; when it is zero, skip to just after the
//                   matching ELSE, or to the matching ENDIF
//   ELSE   else     skip to the matching ENDIF
//  ENDIF   end if   marks the end of a conditional, does nothing
func (vm *VM) ifthen() error {
	toks, err := vm.stack.take("IFTHEN", 1)
	if err != nil {
		return err
	}
	if toks[0].Value != 0 {
		return nil
	}
	return vm.skipBranch("IFTHEN", true)
}

func (vm *VM) elseBranch() error { return vm.skipBranch("ELSE", false) }
func (vm *VM) endif() error      { return nil }

// skipBranch discards tokens through the ENDIF that closes the current
// conditional, or through its ELSE when toElse is set. Conditionals nested
// within the skipped tokens are skipped whole.
func (vm *VM) skipBranch(from string, toElse bool) error {
	for depth := 0; ; {
		tok, err := vm.src.next()
		if err != nil {
			return err
		}
		vm.logf("~", "%v skip %v depth:%v", from, tok, depth)
		switch {
		case tok.isWord("IFTHEN"):
			depth++
		case tok.isWord("ENDIF"):
			if depth == 0 {
				return nil
			}
			depth--
		case tok.isWord("ELSE"):
			if toElse && depth == 0 {
				return nil
			}
		}
	}
}

// Symbol   Name     Function
//    DO    do       start recording a loop body
//  UNTIL   until    pop a condition; when it is zero, replay the loop body,
//                   otherwise end the loop
//
// The recorded body includes the UNTIL itself, so each replay ends by
// testing the condition again.
func (vm *VM) do() error {
	vm.src.startRecording()
	return nil
}

func (vm *VM) until() error {
	toks, err := vm.stack.take("UNTIL", 1)
	if err != nil {
		return err
	}
	if !vm.src.recording() {
		return opError{"UNTIL", ErrNoLoop}
	}
	if toks[0].Value == 0 {
		vm.src.rewind()
	} else {
		vm.src.stopRecording()
	}
	return nil
}
