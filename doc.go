// Package emit writes sequences of mixed values as plain text to a sink.
//
// The central entry point is [Format], which takes a [Sink] and variadic
// values, converts each value to text, and writes the results in argument
// order with nothing inserted between them. [Print] is the same composition
// against [Stdout] with a single trailing newline, and [Sprint] returns the
// text instead of writing it:
//
//	emit.Print(count, " items at ", price, "/each")
//	emit.Format(sink, emit.Indent(depth), name, "\n")
//
// Callers supply their own spacing and structure as string arguments; the
// package never adds separators, quoting, or escaping.
//
// # Supported Values
//
// The conversion set is closed. Signed and unsigned integers of every width
// render in minimal decimal form. float32 and float64 render in the
// shortest decimal form that parses back to the same value (strconv 'g'
// with precision -1), so formatted floats round-trip exactly; NaN and the
// infinities render as "NaN", "+Inf", and "-Inf". string and []byte pass
// through verbatim. Three marker types select special renderings:
//
//   - [Address] — the identity of a reference, as fixed-width hex
//   - [Indent] — a nesting level, as two spaces per level
//   - [Pad] — text padded with spaces to a display width
//
// Everything else (bool, nil, structs, anything user-defined) is rejected
// with [ErrUnsupportedType]. The package guesses no renderings.
//
// # Sinks
//
// A [Sink] is the union of io.Writer, io.ByteWriter, and io.StringWriter,
// which *bytes.Buffer and *bufio.Writer already satisfy:
//
//	var buf bytes.Buffer
//	emit.Format(&buf, "x = ", x)
//
// [NewSink] adapts any other io.Writer (a file, a socket, a pipe), and
// [MultiSink] duplicates output across several destinations. [Stdout] and
// [Stderr] are package variables bound to the process streams; swap them to
// capture or redirect [Print] output. No sink is serialized by this
// package: concurrent writers see whatever interleaving the destination
// produces, and any buffering or retry policy belongs to the destination.
//
// # Streams
//
// [FormatSeq] and [FormatChan] run the same composition over an iterator or
// channel of values instead of an argument list.
//
// # Errors
//
// The package has one failure of its own, [ErrUnsupportedType]. Every other
// error originates in the destination and is returned unmodified, never
// wrapped or swallowed. Composition stops at the first failure, so a sink
// holds exactly the output of the arguments before the failing one.
package emit
