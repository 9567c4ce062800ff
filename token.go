package main

import (
	"strconv"

	"github.com/jcorbin/gosally/internal/runeio"
)

// TokenKind classifies a Token.
type TokenKind uint8

const (
	// UnknownToken is any word that is neither an integer nor a string
	// literal: a built-in name, a variable name, or an unresolved identifier.
	UnknownToken TokenKind = iota

	// IntegerToken is a base-10 integer literal, or a computed integer.
	IntegerToken

	// StringToken is a ." string literal.
	StringToken

	// VariableToken is an UnknownToken that named a variable when dispatched.
	VariableToken
)

var tokenKindNames = [...]string{"unknown", "integer", "string", "variable"}

func (kind TokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return "TokenKind(" + strconv.Itoa(int(kind)) + ")"
}

// Token is the unit of both input and data: tokens are scanned from input
// lines, and the parameter stack holds tokens.
type Token struct {
	Kind  TokenKind
	Value int    // integer value; 0 for any non-integer token
	Text  string // source text; empty for computed integers
}

func intToken(n int) Token { return Token{Kind: IntegerToken, Value: n} }

func (tok Token) String() string {
	switch tok.Kind {
	case IntegerToken:
		return strconv.Itoa(tok.Value)
	case StringToken:
		return `."` + runeio.Visible(tok.Text) + `"`
	case VariableToken:
		return "$" + tok.Text
	default:
		return runeio.Visible(tok.Text)
	}
}

// isWord reports whether the token is the bare word s; control flow scanning
// uses this so that string literals never match a keyword.
func (tok Token) isWord(s string) bool {
	return tok.Kind == UnknownToken && tok.Text == s
}
