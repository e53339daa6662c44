package emit

import (
	"fmt"
	"reflect"
)

// Address selects address-style rendering for a reference: the identity of
// the location, never the contents behind it. It renders as "0x" followed
// by sixteen zero-padded lower-case hex digits, so the same address always
// produces the same string and distinct addresses never collide.
//
// Meant for diagnostic output. Construct one with [Addr], or directly when
// the numeric value is already at hand.
type Address struct {
	Ptr uintptr
}

// Addr wraps the address of p. A nil pointer renders as address zero.
func Addr[T any](p *T) Address {
	return Address{Ptr: reflect.ValueOf(p).Pointer()}
}

func writeAddress(s Sink, a Address) error {
	_, err := s.WriteString(fmt.Sprintf("0x%016x", a.Ptr))
	return err
}
