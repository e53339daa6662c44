package emit

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where text sits inside a padded field.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Pad emits Text padded with spaces to Width display columns. Widths are
// measured in terminal columns, so fullwidth runes count as two and padded
// fields line up. Text already at or beyond Width is emitted verbatim:
// padding never truncates or alters what the caller supplied.
type Pad struct {
	Text  string
	Width int
	Align Alignment
}

func writePad(s Sink, p Pad) error {
	_, err := s.WriteString(alignText(p.Text, p.Width, p.Align))
	return err
}

func alignText(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
