// Package base26 converts between non-negative integers and fixed-width
// strings over the lowercase alphabet, where 'a' is 0 and 'z' is 25.
package base26

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Decode returns the value of s read as a base-26 number, most significant
// letter first. Letters may be of either case. ok is false when s is empty or
// holds anything other than ASCII letters.
func Decode(s string) (n int, ok bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return 0, false
		}
		n = n*26 + int(c-'a')
	}
	return n, true
}

// Encode renders n in base 26, left-padded with 'a' to at least width
// letters. Zero renders as width 'a's, never as the empty string.
func Encode(n, width int) string {
	if n < 0 {
		panic("base26: negative value")
	}
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%26]
		n /= 26
	}
	for len(buf)-i < width {
		i--
		buf[i] = 'a'
	}
	return string(buf[i:])
}
