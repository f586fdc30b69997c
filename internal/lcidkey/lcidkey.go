// Package lcidkey defines the composite key of the LCID table and its order.
// The table compiler sorts with Compare and the lcid package searches with
// it, so both sides always agree.
package lcidkey

import "strings"

// Key identifies one LCID table row. Empty Script or Region means absent.
type Key struct {
	Tag3   string
	Script string
	Region string
}

// Compare orders keys lexicographically by Tag3, then Script, then Region.
// An absent field is empty and therefore orders before any present value.
func Compare(a, b Key) int {
	if c := strings.Compare(a.Tag3, b.Tag3); c != 0 {
		return c
	}
	if c := strings.Compare(a.Script, b.Script); c != 0 {
		return c
	}
	return strings.Compare(a.Region, b.Region)
}

// String renders the key as tag3[-Script][-Region].
func (k Key) String() string {
	s := k.Tag3
	if k.Script != "" {
		s += "-" + k.Script
	}
	if k.Region != "" {
		s += "-" + k.Region
	}
	return s
}
