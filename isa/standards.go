// Package isa parses riscv-opcodes encoding tables and aggregates their
// constant fields per major opcode.
package isa

import (
	"fmt"
	"strings"
)

type Extension byte
type Size uint8
type Standard uint16

const (
	RV32 Size = 32
	RV64 Size = 64
)

const (
	ExtInvalid Extension = 0
	ExtI       Extension = 'I' // base integer
	ExtM       Extension = 'M' // multiply and divide
	ExtA       Extension = 'A' // atomic
	ExtF       Extension = 'F' // single-precision floating point
	ExtD       Extension = 'D' // double-precision floating point
)

const (
	RV32I = Standard(uint16(RV32) | uint16(ExtI)<<8)
	RV32M = Standard(uint16(RV32) | uint16(ExtM)<<8)
	RV32A = Standard(uint16(RV32) | uint16(ExtA)<<8)
	RV32F = Standard(uint16(RV32) | uint16(ExtF)<<8)
	RV32D = Standard(uint16(RV32) | uint16(ExtD)<<8)

	RV64I = Standard(uint16(RV64) | uint16(ExtI)<<8)
	RV64M = Standard(uint16(RV64) | uint16(ExtM)<<8)
	RV64A = Standard(uint16(RV64) | uint16(ExtA)<<8)
	RV64F = Standard(uint16(RV64) | uint16(ExtF)<<8)
	RV64D = Standard(uint16(RV64) | uint16(ExtD)<<8)
)

func MakeStandard(size Size, ext Extension) Standard {
	return Standard(uint16(size) | uint16(ext)<<8)
}

func (s Standard) Size() Size {
	return Size(s & 0xff)
}

func (s Standard) Extension() Extension {
	return Extension(s >> 8)
}

func (s Standard) String() string {
	size := s.Size()
	ext := s.Extension()
	if ext == ExtInvalid {
		return fmt.Sprintf("RV%d", size)
	}
	return fmt.Sprintf("RV%d%c", size, ext)
}

// Descriptor is a parsed ISA string such as "RV64IMAFD": a base width and
// the extension letters in the order they were written.
type Descriptor struct {
	Size       Size
	Extensions []Extension
}

// Standards returns one Standard per extension letter, in descriptor order.
func (d Descriptor) Standards() []Standard {
	ret := make([]Standard, len(d.Extensions))
	for i, ext := range d.Extensions {
		ret[i] = MakeStandard(d.Size, ext)
	}
	return ret
}

func (d Descriptor) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "RV%d", d.Size)
	for _, ext := range d.Extensions {
		buf.WriteByte(byte(ext))
	}
	return buf.String()
}

// DescriptorError reports an ISA string whose base width prefix is not one
// of RV32 or RV64.
type DescriptorError struct {
	Input string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid ISA descriptor %q: must start with RV32 or RV64", e.Input)
}

// UnsupportedExtensionError reports an extension letter for which the
// registry holds no encoding table.
type UnsupportedExtensionError struct {
	Size   Size
	Letter byte
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("unsupported extension %q for RV%d", e.Letter, e.Size)
}

// ParseDescriptor parses an ISA string. The first four characters select the
// base width and every following character is one extension letter. Letters
// are case-insensitive. Whether each extension actually has an encoding table
// is checked by the Registry, not here.
func ParseDescriptor(s string) (Descriptor, error) {
	if len(s) < 4 {
		return Descriptor{}, &DescriptorError{Input: s}
	}
	var size Size
	switch strings.ToUpper(s[:4]) {
	case "RV32":
		size = RV32
	case "RV64":
		size = RV64
	default:
		return Descriptor{}, &DescriptorError{Input: s}
	}

	d := Descriptor{Size: size}
	for _, r := range strings.ToUpper(s[4:]) {
		if r < 'A' || r > 'Z' {
			return Descriptor{}, &UnsupportedExtensionError{Size: size, Letter: byte(r)}
		}
		d.Extensions = append(d.Extensions, Extension(r))
	}
	return d, nil
}

type Standards map[Standard]struct{}

func (ss Standards) Has(s Standard) bool {
	_, ok := ss[s]
	return ok
}

func (ss Standards) Add(s Standard) {
	ss[s] = struct{}{}
}
