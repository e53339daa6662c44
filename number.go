package emit

import "strconv"

func writeInt(s Sink, v int64) error {
	_, err := s.WriteString(strconv.FormatInt(v, 10))
	return err
}

func writeUint(s Sink, v uint64) error {
	_, err := s.WriteString(strconv.FormatUint(v, 10))
	return err
}

// writeFloat emits the shortest decimal form that parses back to v at the
// given precision ('g' format). NaN and the infinities render as "NaN",
// "+Inf", and "-Inf".
func writeFloat(s Sink, v float64, bits int) error {
	_, err := s.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
	return err
}
