package illegal_test

import (
	"bytes"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apparentlymart/riscv-illegals/illegal"
	"github.com/apparentlymart/riscv-illegals/isa"
)

const opR isa.Opcode = 0b0110011

var (
	funct7 = isa.BitRange{High: 31, Low: 25}
	funct3 = isa.BitRange{High: 14, Low: 12}
)

func analyze(s string) *isa.ConstraintMap {
	d, err := isa.ParseDescriptor(s)
	Expect(err).NotTo(HaveOccurred())
	m, err := illegal.Analyze(isa.DefaultRegistry(), d)
	Expect(err).NotTo(HaveOccurred())
	return m
}

var _ = Describe("IllegalOpcodes", func() {
	It("should list the unused 32-bit opcodes of RV32I", func() {
		m := analyze("RV32I")
		words := illegal.IllegalOpcodes(m)

		Expect(words).To(HaveLen(22))
		Expect(words).To(ContainElement(uint32(0b0101111)))
		Expect(words).NotTo(ContainElement(uint32(opR)))
		for _, w := range words {
			Expect(w & 0b11).To(Equal(uint32(0b11)))
			Expect(m.Has(isa.Opcode(w))).To(BeFalse())
		}
	})

	It("should shrink as extensions claim opcodes", func() {
		Expect(illegal.IllegalOpcodes(analyze("RV64IMAFD"))).
			To(HaveLen(32 - len(analyze("RV64IMAFD").Opcodes())))
		Expect(illegal.IllegalOpcodes(analyze("RV64IMAFD"))).
			NotTo(ContainElement(uint32(0b0101111)))
	})
})

var _ = Describe("Generate", func() {
	It("should know the R-type opcode for RV32I", func() {
		Expect(analyze("RV32I").Has(opR)).To(BeTrue())
	})

	It("should perturb funct3/funct7 of the R-type opcode for RV32I", func() {
		m := analyze("RV32I")
		words, err := illegal.Generate("RV32I")
		Expect(err).NotTo(HaveOccurred())

		found := false
		for _, w := range words {
			if isa.OpcodeOf(w) != opR {
				continue
			}
			if !m.Legal(opR, funct7).Has(funct7.Extract(w)) || !m.Legal(opR, funct3).Has(funct3.Extract(w)) {
				found = true
				break
			}
		}
		Expect(found).To(BeTrue())
	})

	It("should start with the unused opcodes", func() {
		m := analyze("RV32I")
		unused := illegal.IllegalOpcodes(m)
		words, err := illegal.Generate("RV32I")
		Expect(err).NotTo(HaveOccurred())

		Expect(len(words)).To(BeNumerically(">", len(unused)))
		for i, op := range unused {
			Expect(words[i] & isa.OpcodeMask).To(Equal(op))
		}
	})

	It("should be deterministic", func() {
		a, err := illegal.Generate("RV64IMAFD")
		Expect(err).NotTo(HaveOccurred())
		b, err := illegal.Generate("RV64IMAFD")
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("should only produce 32-bit encodings", func() {
		words, err := illegal.Generate("RV64IMAFD")
		Expect(err).NotTo(HaveOccurred())
		for _, w := range words {
			Expect(isa.OpcodeOf(w).Is32Bit()).To(BeTrue())
		}
	})

	It("should accept lower-case descriptors", func() {
		upper, err := illegal.Generate("RV32IM")
		Expect(err).NotTo(HaveOccurred())
		lower, err := illegal.Generate("rv32im")
		Expect(err).NotTo(HaveOccurred())
		Expect(lower).To(Equal(upper))
	})

	It("should report the unsupported extension letter", func() {
		_, err := illegal.Generate("RV32IMC")
		var uerr *isa.UnsupportedExtensionError
		Expect(errors.As(err, &uerr)).To(BeTrue())
		Expect(uerr.Letter).To(Equal(byte('C')))
	})

	It("should reject a bad base width", func() {
		_, err := illegal.Generate("RV128I")
		var derr *isa.DescriptorError
		Expect(errors.As(err, &derr)).To(BeTrue())
	})

	It("should reject x0 as a substitute register", func() {
		_, err := illegal.Generate("RV32I", illegal.WithHintRegister(0))
		Expect(err).To(HaveOccurred())
		_, err = illegal.Generate("RV32I", illegal.WithBaseRegister(32))
		Expect(err).To(HaveOccurred())
	})

	It("should produce more words with cartesian coverage", func() {
		pairwise, err := illegal.Generate("RV32IMAFD")
		Expect(err).NotTo(HaveOccurred())
		cartesian, err := illegal.Generate("RV32IMAFD", illegal.WithCoverage(illegal.CoverageCartesian))
		Expect(err).NotTo(HaveOccurred())
		Expect(len(cartesian)).To(BeNumerically(">", len(pairwise)))
	})

	It("should log a summary at debug level", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := illegal.Generate("RV32I", illegal.WithLogger(logger))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("Generated illegal instructions"))
		Expect(buf.String()).To(ContainSubstring("isa=RV32I"))
	})
})

var _ = Describe("WithDropLegal", func() {
	It("should keep decodable words by default", func() {
		words, err := illegal.Generate("RV32I")
		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(ContainElements(uint32(0x00000073), uint32(0x00001313), uint32(0x00005313)))
	})

	It("should drop ecall and the shift-immediates", func() {
		all, err := illegal.Generate("RV32I")
		Expect(err).NotTo(HaveOccurred())
		words, err := illegal.Generate("RV32I", illegal.WithDropLegal(true))
		Expect(err).NotTo(HaveOccurred())

		Expect(words).NotTo(ContainElement(uint32(0x00000073)))
		Expect(words).NotTo(ContainElement(uint32(0x00001313)))
		Expect(words).NotTo(ContainElement(uint32(0x00005313)))
		Expect(words).To(HaveLen(len(all) - 3))
	})

	It("should leave nothing that decodes", func() {
		d, err := isa.ParseDescriptor("RV64IMAFD")
		Expect(err).NotTo(HaveOccurred())
		reg := isa.DefaultRegistry()

		o := illegal.DefaultOptions()
		o.DropLegal = true
		words, err := illegal.GenerateFor(reg, d, o)
		Expect(err).NotTo(HaveOccurred())
		Expect(words).NotTo(BeEmpty())
		Expect(words).NotTo(ContainElement(uint32(0x0000131b)))
		for _, w := range words {
			spec, ok := reg.Decode(d, w)
			Expect(ok).To(BeFalse(), "%#08x decodes as %s", w, spec.Mnemonic)
		}
	})

	It("should report how many words it dropped", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := illegal.Generate("RV32I", illegal.WithDropLegal(true), illegal.WithLogger(logger))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("dropped=3"))
	})
})

var _ = Describe("Coverage", func() {
	It("should round-trip through its name", func() {
		for _, c := range []illegal.Coverage{illegal.CoveragePairwise, illegal.CoverageCartesian} {
			got, err := illegal.ParseCoverage(c.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(c))
		}
		_, err := illegal.ParseCoverage("exhaustive")
		Expect(err).To(HaveOccurred())
	})
})
