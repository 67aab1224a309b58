package lox

import (
	"fmt"
)

// FloatVal renders a float64 the way Lox numbers print: integral values
// drop their trailing ".0" (so `3.0` prints as `3`, but `3.5` stays `3.5`).
func FloatVal(v float64) string {
	text := fmt.Sprintf("%v", v)
	pos := len(text) - 2

	if pos > 0 && text[pos:] == ".0" {
		text = text[0:pos]
	}

	return text
}
