package isa

import (
	"fmt"
)

// Opcode is the seven-bit major opcode held in bits 6..0 of a standard-length
// instruction word.
type Opcode uint8

const (
	OpcodeMask = 0b1111111

	// Opcodes with the two low bits both set belong to the 32-bit encoding
	// space; the other three quadrants are compressed instructions.
	quadrantMask = 0b11
	quadrant32   = 0b11
)

func (op Opcode) String() string {
	return fmt.Sprintf("0b%07b", uint8(op))
}

// Is32Bit reports whether op lies in the non-compressed quadrant.
func (op Opcode) Is32Bit() bool {
	return op&quadrantMask == quadrant32
}

// OpcodeOf extracts the major opcode from an instruction word.
func OpcodeOf(word uint32) Opcode {
	return Opcode(word & OpcodeMask)
}

// BitRange is an inclusive span of bit positions within an instruction word.
type BitRange struct {
	High, Low uint
}

var (
	majorRange    = BitRange{High: 6, Low: 2}
	quadrantRange = BitRange{High: 1, Low: 0}
)

func (r BitRange) Width() uint {
	return r.High - r.Low + 1
}

func (r BitRange) Mask() uint32 {
	return rangeMask(r.High, r.Low)
}

// Extract returns the value held in r within word.
func (r BitRange) Extract(word uint32) uint32 {
	return (word & r.Mask()) >> r.Low
}

// Place shifts v into position. v must fit in r.
func (r BitRange) Place(v uint32) uint32 {
	return v << r.Low
}

func (r BitRange) Overlaps(o BitRange) bool {
	return r.Low <= o.High && o.Low <= r.High
}

func (r BitRange) String() string {
	return fmt.Sprintf("%d..%d", r.High, r.Low)
}

func rangeMask(top, bottom uint) uint32 {
	return uint32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}

// Word formats an instruction word in the binary style used throughout the
// tooling output.
type Word uint32

func (v Word) String() string {
	return fmt.Sprintf("0b%032b", uint32(v))
}
