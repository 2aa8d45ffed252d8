package illegal

import (
	"github.com/apparentlymart/riscv-illegals/isa"
)

const (
	opLoad     isa.Opcode = 3  // lb, lh, lw, lbu, lhu, ld, lwu
	opMiscMem  isa.Opcode = 15 // fence, fence.i
	opOpImm    isa.Opcode = 19 // addi, slti, sltiu, xori, ori, andi, slli, srli, srai
	opAUIPC    isa.Opcode = 23
	opOpImm32  isa.Opcode = 27 // addiw, slliw, srliw, sraiw
	opStore    isa.Opcode = 35 // sb, sh, sw, sd
	opAMO      isa.Opcode = 47
	opOp       isa.Opcode = 51 // add, sub, sll, slt, sltu, xor, srl, sra, or, and
	opLUI      isa.Opcode = 55
	opOp32     isa.Opcode = 59 // addw, subw, sllw, srlw, sraw
)

var (
	rdField     = mustOperandField("rd")
	rs1Field    = mustOperandField("rs1")
	funct3Field = isa.BitRange{High: 14, Low: 12}
)

func mustOperandField(name string) isa.BitRange {
	r, ok := isa.OperandField(name)
	if !ok {
		panic("no fixed field for operand " + name)
	}
	return r
}

// hintOpcodes are the opcodes where rd=x0 encodes a hint rather than an
// ordinary instruction.
var hintOpcodes = map[isa.Opcode]bool{
	opLUI:     true,
	opAUIPC:   true,
	opOpImm:   true,
	opOpImm32: true,
	opOp:      true,
	opOp32:    true,
}

// Correct rewrites words in place so they avoid hint encodings, x0-based
// addressing and the AMO funct3 values that alias LR/SC widths. Apart from
// the optional fence rule, running it twice gives the same result as once.
func Correct(words []uint32, o Options) {
	for i, w := range words {
		words[i] = correctWord(w, o)
	}
}

func correctWord(w uint32, o Options) uint32 {
	op := isa.OpcodeOf(w)

	if hintOpcodes[op] && rdField.Extract(w) == 0 {
		w += rdField.Place(o.HintRegister)
	}
	if op == opMiscMem && o.FenceCorrection && rdField.Extract(w) == 0 && funct3Field.Extract(w) != 0 {
		w += 1 << 20
	}

	if (op == opLoad || op == opStore) && rs1Field.Extract(w) == 0 {
		w += rs1Field.Place(o.BaseRegister)
	}

	if op == opAMO {
		if f3 := funct3Field.Extract(w); f3 == 2 || f3 == 3 {
			w -= 2 << funct3Field.Low
		}
	}
	return w
}
