package emit

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrUnsupportedType reports a value outside the supported conversion set.
var ErrUnsupportedType = errors.New("unsupported type")

// Format converts each argument to text and writes it to s, strictly in
// argument order with no separators. It stops at the first failure and
// returns the sink's error unmodified; arguments after the failing one are
// not converted.
func Format(s Sink, args ...any) error {
	for _, arg := range args {
		if err := formatValue(s, arg); err != nil {
			return err
		}
	}
	return nil
}

// Print formats args to [Stdout] and appends a single newline. The newline
// is the only output not supplied by the caller; it is skipped when
// formatting fails.
func Print(args ...any) error {
	if err := Format(Stdout, args...); err != nil {
		return err
	}
	return Stdout.WriteByte('\n')
}

// Sprint formats args and returns the text.
func Sprint(args ...any) (string, error) {
	var buf bytes.Buffer
	if err := Format(&buf, args...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatValue converts one value. The supported set is closed: integers,
// floats, text, and the marker types. Anything else, including nil, is an
// [ErrUnsupportedType] error rather than a guessed rendering.
func formatValue(s Sink, v any) error {
	switch v := v.(type) {
	case string:
		_, err := s.WriteString(v)
		return err
	case []byte:
		_, err := s.Write(v)
		return err
	case int:
		return writeInt(s, int64(v))
	case int8:
		return writeInt(s, int64(v))
	case int16:
		return writeInt(s, int64(v))
	case int32:
		return writeInt(s, int64(v))
	case int64:
		return writeInt(s, v)
	case uint:
		return writeUint(s, uint64(v))
	case uint8:
		return writeUint(s, uint64(v))
	case uint16:
		return writeUint(s, uint64(v))
	case uint32:
		return writeUint(s, uint64(v))
	case uint64:
		return writeUint(s, v)
	case float32:
		return writeFloat(s, float64(v), 32)
	case float64:
		return writeFloat(s, v, 64)
	case Address:
		return writeAddress(s, v)
	case Indent:
		return writeIndent(s, v)
	case Pad:
		return writePad(s, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
