package main

// stack is the parameter stack: a plain LIFO of tokens, optionally bounded.
type stack struct {
	tokens []Token
	limit  int
}

func (s *stack) size() int { return len(s.tokens) }

func (s *stack) push(tok Token) error {
	if s.limit > 0 && len(s.tokens) >= s.limit {
		return ErrStackOverflow
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

func (s *stack) top() (Token, error) {
	if len(s.tokens) == 0 {
		return Token{}, underflowError{"top", 1, 0}
	}
	return s.tokens[len(s.tokens)-1], nil
}

// take pops n tokens on behalf of op, returning them topmost first.
// Nothing is popped unless the stack holds at least n tokens.
func (s *stack) take(op string, n int) ([]Token, error) {
	have := len(s.tokens)
	if have < n {
		return nil, underflowError{op, n, have}
	}
	toks := make([]Token, n)
	for i := range toks {
		toks[i] = s.tokens[have-1-i]
	}
	s.tokens = s.tokens[:have-n]
	return toks, nil
}

// values returns the stack contents, bottom first, as strings.
func (s *stack) values() []string {
	strs := make([]string, len(s.tokens))
	for i, tok := range s.tokens {
		strs[i] = tok.String()
	}
	return strs
}
