// Package octal converts trial flag bitmasks to and from the textual
// octal form used by the ASCII log.
package octal

import (
	"strconv"

	"github.com/erptools/erplog/pkg/errclass"
)

// Decode parses a token of octal digits into a flag bitmask. Any
// character outside 0-7 (including a sign, a base prefix, or the decimal
// digits 8 and 9) and the empty token are rejected.
func Decode(token string) (int64, error) {
	if token == "" {
		return 0, errclass.ErrMalformedFlags.WithMessage("empty flags token")
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '7' {
			return 0, errclass.ErrMalformedFlags.WithMessagef("invalid octal digit %q in flags token %q", token[i], token)
		}
	}
	v, err := strconv.ParseUint(token, 8, 63)
	if err != nil {
		return 0, errclass.ErrMalformedFlags.WithMessagef("flags token %q out of range", token)
	}
	return int64(v), nil
}

// Encode renders flags in canonical octal: no leading zeros, a single
// "0" for the zero value. Inverse of Decode for all non-negative values.
func Encode(flags int64) string {
	return strconv.FormatInt(flags, 8)
}
