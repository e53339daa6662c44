package emit

import "iter"

// FormatSeq formats values from an iterator as they arrive, with the same
// conversions and ordering as [Format]. It stops at the first error and
// returns it; values after the failing one are not pulled from seq.
func FormatSeq[T any](s Sink, seq iter.Seq[T]) error {
	for v := range seq {
		if err := formatValue(s, v); err != nil {
			return err
		}
	}
	return nil
}

// FormatChan formats values from a channel until it closes.
// It is a thin wrapper around [FormatSeq].
func FormatChan[T any](s Sink, ch <-chan T) error {
	return FormatSeq(s, chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
