// Package idcodec implements the bijective mapping between a non-negative
// insertion order and a short alphabetic code. Orders are rendered as
// base-26 numbers over the alphabet 'a'..'z' with 'a' = 0, in the style of
// spreadsheet column names: 0 -> "a", 25 -> "z", 26 -> "ba", 676 -> "baa".
package idcodec

import (
	"errors"
	"fmt"
)

const base = 26

// Encode renders a non-negative order as its alphabetic code.
// Encode and Decode are mutual inverses for every order >= 0.
func Encode(order int) string {
	if order <= 0 {
		return "a"
	}

	// Digit count by repeated integer division. A floating point
	// log would misround at exact powers of 26.
	digits := 1
	for p := order; p >= base; p /= base {
		digits++
	}

	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = byte('a' + order%base)
		order /= base
	}
	return string(buf)
}

// Decode converts a code produced by Encode back into its order.
func Decode(code string) (int, error) {
	if code == "" {
		return 0, errors.New("empty code")
	}
	order := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("invalid code character %q in %q", c, code)
		}
		order = order*base + int(c-'a')
	}
	return order, nil
}
