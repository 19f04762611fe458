package utils

import "math/bits"

// RoundUp2 - Returns the nearest power of 2 that is equal to or bigger than a. Values below 1 returns 1.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	return 1 << (64 - bits.LeadingZeros64(uint64(a-1)))
}

// CopyBytes - Returns a newly allocated copy of a. A nil or empty slice gives an empty, non nil, slice
// so that an owned payload is never shared with the caller.
func CopyBytes(a []byte) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)

	return
}
