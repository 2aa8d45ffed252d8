package isa

import "strings"

type ArgType string

const (
	ArgGeneral           ArgType = "arg"
	ArgIntReg            ArgType = "ireg"
	ArgOffset            ArgType = "offset"
	ArgSignedImmediate   ArgType = "simm"
	ArgUnsignedImmediate ArgType = "uimm"
	ArgRoundingMode      ArgType = "rm"
	ArgOrdering          ArgType = "order"
)

// The register operands are shared between the integer and floating point
// files; which one applies depends on the instruction, not the operand name.
var argTypes = map[string]ArgType{
	"rd":       ArgIntReg,
	"rs1":      ArgIntReg,
	"rs2":      ArgIntReg,
	"rs3":      ArgIntReg,
	"imm12":    ArgSignedImmediate,
	"imm12hi":  ArgSignedImmediate,
	"imm12lo":  ArgSignedImmediate,
	"imm20":    ArgUnsignedImmediate,
	"bimm12hi": ArgOffset,
	"bimm12lo": ArgOffset,
	"jimm20":   ArgOffset,
	"shamt":    ArgUnsignedImmediate,
	"shamtw":   ArgUnsignedImmediate,
	"rm":       ArgRoundingMode,
	"aqrl":     ArgOrdering,
	"pred":     ArgOrdering,
	"succ":     ArgOrdering,
	"fm":       ArgOrdering,
}

// OperandType classifies a free operand name from an encoding line. Unknown
// names are reported as ArgGeneral.
func OperandType(name string) ArgType {
	if t, ok := argTypes[strings.ToLower(name)]; ok {
		return t
	}
	return ArgGeneral
}

// OperandField returns the bit range an operand occupies, for the operands
// whose position is fixed across all standard-length formats.
func OperandField(name string) (BitRange, bool) {
	switch strings.ToLower(name) {
	case "rd":
		return BitRange{High: 11, Low: 7}, true
	case "rs1":
		return BitRange{High: 19, Low: 15}, true
	case "rs2":
		return BitRange{High: 24, Low: 20}, true
	case "rs3":
		return BitRange{High: 31, Low: 27}, true
	case "rm":
		return BitRange{High: 14, Low: 12}, true
	case "aqrl":
		return BitRange{High: 26, Low: 25}, true
	case "imm12":
		return BitRange{High: 31, Low: 20}, true
	case "imm20", "jimm20":
		return BitRange{High: 31, Low: 12}, true
	}
	return BitRange{}, false
}
