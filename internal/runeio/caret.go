package runeio

import "strings"

// CaretForm computes the ^-escaped printable form of a control rune: C0
// controls and DEL become "^X", C1 controls become "^[X" after their classic
// 7-bit ESC form. Returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Visible returns s with every control rune replaced by its CaretForm, so
// that it may be shown on a single line of diagnostic output.
func Visible(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isControl(r rune) bool { return CaretForm(r) != "" }
