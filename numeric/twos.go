// Package numeric holds small helpers for building register test values.
package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// Twos interprets the low bits of v as a two's complement number of the
// given width and returns its signed value. Bits above the width are ignored.
func Twos(v uint64, bits uint) int64 {
	if bits == 0 || bits > 64 {
		panic(fmt.Sprintf("numeric.Twos: width %d out of range 1..64", bits))
	}
	mask := widthMask(bits)
	v &= mask
	if v&(uint64(1)<<(bits-1)) != 0 {
		v |= ^mask
	}
	return int64(v)
}

// ParseTwos is Twos for a text literal. A "0x" prefix selects hexadecimal;
// anything else, with or without a "0b" prefix, is read as binary.
func ParseTwos(s string, bits uint) (int64, error) {
	if bits == 0 || bits > 64 {
		return 0, fmt.Errorf("width %d out of range 1..64", bits)
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	base := 2
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid literal: %w", err)
	}
	return Twos(v, bits), nil
}

// widthMask has the low bits set. Shifting by 64 yields zero, so the 64-bit
// case wraps to all ones.
func widthMask(bits uint) uint64 {
	return (uint64(1) << bits) - 1
}
