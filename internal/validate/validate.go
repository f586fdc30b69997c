// Package validate holds the shape checks for the identifiers stored in the
// language tables: ISO 639 tags, ISO 15924 scripts and region subtags.
// The table compiler rejects rows that fail them; the pseudo-LCID codec uses
// the region checks to pick an encoding.
package validate

// Tag3 reports whether s is exactly three lowercase ASCII letters.
func Tag3(s string) bool {
	return len(s) == 3 && inRange(s, 'a', 'z')
}

// Tag1 reports whether s is exactly two lowercase ASCII letters.
func Tag1(s string) bool {
	return len(s) == 2 && inRange(s, 'a', 'z')
}

// Script reports whether s is a title-cased four letter ISO 15924 code,
// e.g. "Latn". Lookups compare scripts byte for byte, so other casings are
// not accepted into the tables.
func Script(s string) bool {
	return len(s) == 4 && inRange(s[:1], 'A', 'Z') && inRange(s[1:], 'a', 'z')
}

// AlphaRegion reports whether s is an ISO 3166-1 alpha-2 code in canonical
// (uppercase) form.
func AlphaRegion(s string) bool {
	return len(s) == 2 && inRange(s, 'A', 'Z')
}

// NumericRegion reports whether s is a three digit UN M.49 code.
func NumericRegion(s string) bool {
	return len(s) == 3 && inRange(s, '0', '9')
}

// Region reports whether s is either an alpha-2 or an M.49 region.
func Region(s string) bool {
	return AlphaRegion(s) || NumericRegion(s)
}

// Letters reports whether s consists of exactly n ASCII letters of any case.
func Letters(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func inRange(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < lo || s[i] > hi {
			return false
		}
	}
	return true
}
