package token

import "fmt"

// Describe names the byte at off for use in error messages.
func Describe(d []byte, off int) string {
	if off >= len(d) {
		return "end of input"
	}
	return fmt.Sprintf("%q", d[off])
}
