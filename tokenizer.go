package main

import (
	"strconv"
	"strings"
)

// tokenize scans one input line, appending its tokens to toks.
//
// Tokens are separated by spaces and tabs. At the start of a token:
//   - "//" comments out the rest of the line
//   - `."` starts a string literal, running up to the next `"` or the end of
//     the line; the quotes are not part of the literal
//
// Any other run of non-blank characters is an integer if it parses as a
// base-10 integer (with optional sign), or an unknown word otherwise.
func tokenize(toks []Token, line string) []Token {
	for i := skipBlanks(line, 0); i < len(line); i = skipBlanks(line, i) {
		rest := line[i:]
		switch {
		case strings.HasPrefix(rest, "//"):
			return toks

		case strings.HasPrefix(rest, `."`):
			rest = rest[2:]
			end := strings.IndexByte(rest, '"')
			if end < 0 {
				return append(toks, Token{Kind: StringToken, Text: rest})
			}
			toks = append(toks, Token{Kind: StringToken, Text: rest[:end]})
			i += 2 + end + 1

		default:
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				end = len(rest)
			}
			toks = append(toks, wordToken(rest[:end]))
			i += end
		}
	}
	return toks
}

func wordToken(word string) Token {
	if n, err := strconv.ParseInt(word, 10, strconv.IntSize); err == nil {
		return Token{Kind: IntegerToken, Value: int(n), Text: word}
	}
	return Token{Kind: UnknownToken, Text: word}
}

func skipBlanks(line string, i int) int {
	for i < len(line) && isBlank(line[i]) {
		i++
	}
	return i
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
