package emit

import "strings"

// Indent emits its level in whitespace rather than as a number: n copies
// of a two-space unit. Levels at or below zero emit nothing.
type Indent int

// indentUnit is the whitespace emitted per indent level, fixed for the
// whole package so nested output lines up.
const indentUnit = "  "

func writeIndent(s Sink, v Indent) error {
	if v <= 0 {
		return nil
	}
	_, err := s.WriteString(strings.Repeat(indentUnit, int(v)))
	return err
}
