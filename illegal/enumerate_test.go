package illegal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apparentlymart/riscv-illegals/illegal"
	"github.com/apparentlymart/riscv-illegals/isa"
)

func aggregate(lines ...string) *isa.ConstraintMap {
	var specs []isa.InstructionSpec
	for _, line := range lines {
		spec, err := isa.ParseSpec(line)
		Expect(err).NotTo(HaveOccurred())
		specs = append(specs, spec)
	}
	return isa.Aggregate(specs)
}

var _ = Describe("Enumerate", func() {
	Context("with a single constant range", func() {
		It("should emit every illegal value of that range", func() {
			m := aggregate("only rd rs1 rs2 14..12=0 6..2=0x0C 1..0=3")
			words := illegal.Enumerate(m, illegal.CoveragePairwise)

			var want []uint32
			for v := uint32(1); v < 8; v++ {
				want = append(want, 0x33|v<<12)
			}
			Expect(words).To(Equal(want))
		})
	})

	Context("with two constant ranges", func() {
		var m *isa.ConstraintMap

		BeforeEach(func() {
			m = aggregate(
				"x rd rs1 rs2 31..25=0 14..12=0 6..2=0x0C 1..0=3",
				"y rd rs1 rs2 31..25=1 14..12=0 6..2=0x0C 1..0=3",
			)
		})

		It("should pair one illegal range with one legal range", func() {
			words := illegal.Enumerate(m, illegal.CoveragePairwise)

			// {31..25} against 14..12=0, {14..12} against 31..25 in {0,1},
			// then both perturbed with nothing held.
			Expect(words).To(HaveLen(126 + 7*2 + 126 + 7))
			Expect(words[0]).To(Equal(uint32(0x04000033)))
			Expect(words[126]).To(Equal(uint32(0x00001033)))
			Expect(words[127]).To(Equal(uint32(0x02001033)))
			Expect(words[len(words)-1]).To(Equal(uint32(0x00007033)))
		})

		It("should cover the full product when asked", func() {
			words := illegal.Enumerate(m, illegal.CoverageCartesian)
			Expect(words).To(HaveLen(126 + 7*2 + 126*7))
			Expect(words).To(ContainElement(uint32(0xfe007033)))
		})
	})

	It("should emit nothing for opcodes without constant ranges", func() {
		m := aggregate("lui rd imm20 6..2=0x0D 1..0=3")
		Expect(illegal.Enumerate(m, illegal.CoveragePairwise)).To(BeEmpty())
	})

	It("should never emit a fully legal word", func() {
		for _, s := range []string{"RV32I", "RV32IMAFD", "RV64IMAFD"} {
			m := analyze(s)
			for _, c := range []illegal.Coverage{illegal.CoveragePairwise, illegal.CoverageCartesian} {
				for _, w := range illegal.Enumerate(m, c) {
					Expect(m.Has(isa.OpcodeOf(w))).To(BeTrue())
					Expect(m.FullyLegal(w)).To(BeFalse(), "%s %s %#08x", s, c, w)
				}
			}
		}
	})

	It("should keep duplicates", func() {
		// Perturbing {31..25} alone and {31..25, 14..12} together both
		// emit 31..25 illegal with 14..12 zero.
		m := aggregate(
			"x rd rs1 rs2 31..25=0 14..12=0 6..2=0x0C 1..0=3",
			"y rd rs1 rs2 31..25=1 14..12=0 6..2=0x0C 1..0=3",
		)
		count := 0
		for _, w := range illegal.Enumerate(m, illegal.CoveragePairwise) {
			if w == 0x04000033 {
				count++
			}
		}
		Expect(count).To(Equal(2))
	})
})
