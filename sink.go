package emit

import (
	"io"
	"os"
)

// Sink is a destination for formatted text. It is the union of three
// standard writer capabilities, so *bytes.Buffer, *bufio.Writer, and
// anything else implementing all three is a Sink with no adapter. Use
// [NewSink] for writers that are missing one of them.
//
// A sink receives output in the exact order values were formatted. What a
// failed or partial write means is up to the concrete destination; this
// package only passes its errors through.
type Sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Standard sinks, bound to the process streams at startup and used by
// [Print]. They are plain variables: tests and embedding applications may
// swap in their own sinks. Neither is serialized; concurrent writers see
// whatever interleaving the destination produces.
var (
	Stdout Sink = NewSink(os.Stdout)
	Stderr Sink = NewSink(os.Stderr)
)

// NewSink adapts w to a [Sink]. A writer already satisfying Sink is
// returned as is. Otherwise the adapter forwards to w, using its own
// WriteByte or WriteString when it has them.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

var _ Sink = (*writerSink)(nil)

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) WriteByte(c byte) error {
	if bw, ok := s.w.(io.ByteWriter); ok {
		return bw.WriteByte(c)
	}
	_, err := s.w.Write([]byte{c})
	return err
}

func (s *writerSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

// MultiSink returns a sink that duplicates everything it receives to each
// of sinks, in order. Like io.MultiWriter it stops at the first failing
// destination and reports a short write as an error, so every sink before
// the failure holds identical bytes.
func MultiSink(sinks ...Sink) Sink {
	all := make([]Sink, len(sinks))
	copy(all, sinks)
	return &multiSink{sinks: all}
}

type multiSink struct {
	sinks []Sink
}

var _ Sink = (*multiSink)(nil)

func (m *multiSink) Write(p []byte) (int, error) {
	for _, s := range m.sinks {
		n, err := s.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (m *multiSink) WriteByte(c byte) error {
	for _, s := range m.sinks {
		if err := s.WriteByte(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiSink) WriteString(str string) (int, error) {
	for _, s := range m.sinks {
		n, err := s.WriteString(str)
		if err != nil {
			return n, err
		}
		if n != len(str) {
			return n, io.ErrShortWrite
		}
	}
	return len(str), nil
}
