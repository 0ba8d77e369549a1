package editor

import (
	"math"
	"strings"
)

// ParseCounter reads the leading decimal digits of a counter field. Input
// without leading digits, and negative input, reads as 0. Leading spaces
// and a plus sign are allowed. Values too large for an int saturate.
func ParseCounter(input string) int {
	s := strings.TrimLeft(input, " \t\n\r")
	s = strings.TrimPrefix(s, "+")

	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}
