package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSinkDelegatesWriteByte(t *testing.T) {
	t.Parallel()
	// byteRecorder has its own WriteByte; the adapter must use it instead
	// of going through Write.
	w := &byteRecorder{}
	s := NewSink(w)

	assert.NoError(t, s.WriteByte('x'))
	assert.Equal(t, 1, w.byteCalls)
	assert.Equal(t, "x", w.buf.String())
}

func TestWriterSinkFallsBackToWrite(t *testing.T) {
	t.Parallel()
	w := &plainWriter{}
	s := NewSink(w)

	assert.NoError(t, s.WriteByte('y'))
	_, err := s.WriteString("es")
	assert.NoError(t, err)
	assert.Equal(t, "yes", w.buf.String())
}

func TestAlignText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align Alignment
		want  string
	}{
		"empty zero width": {s: "", width: 0, align: AlignLeft, want: ""},
		"wider than width": {s: "abc", width: 2, align: AlignRight, want: "abc"},
		"exact width":      {s: "ab", width: 2, align: AlignRight, want: "ab"},
		"center odd pad":   {s: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"center fullwidth": {s: "你", width: 4, align: AlignCenter, want: " 你 "},
		"left fullwidth":   {s: "你", width: 3, align: AlignLeft, want: "你 "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignText(tt.s, tt.width, tt.align))
		})
	}
}

func TestChanToSeqStopsWhenConsumerStops(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)

	var got []int
	for v := range chanToSeq(ch) {
		got = append(got, v)
		break
	}
	assert.Equal(t, []int{1}, got)
}

// byteRecorder counts WriteByte calls so delegation is observable.
type byteRecorder struct {
	buf       bytes.Buffer
	byteCalls int
}

func (w *byteRecorder) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *byteRecorder) WriteByte(c byte) error {
	w.byteCalls++
	return w.buf.WriteByte(c)
}

// plainWriter has only Write, so the adapter synthesizes the other two.
type plainWriter struct {
	buf bytes.Buffer
}

func (w *plainWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }
