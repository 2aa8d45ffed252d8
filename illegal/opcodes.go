package illegal

import (
	"github.com/apparentlymart/riscv-illegals/isa"
)

// IllegalOpcodes returns, in ascending order, every 32-bit-quadrant major
// opcode that no instruction in m uses. The words carry zero in every bit
// above the opcode.
func IllegalOpcodes(m *isa.ConstraintMap) []uint32 {
	var ret []uint32
	for i := 0; i <= isa.OpcodeMask; i++ {
		op := isa.Opcode(i)
		if m.Has(op) || !op.Is32Bit() {
			continue
		}
		ret = append(ret, uint32(op))
	}
	return ret
}
