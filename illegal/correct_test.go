package illegal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apparentlymart/riscv-illegals/illegal"
)

var _ = Describe("Correct", func() {
	var opts illegal.Options

	BeforeEach(func() {
		opts = illegal.DefaultOptions()
	})

	correct := func(words ...uint32) []uint32 {
		illegal.Correct(words, opts)
		return words
	}

	It("should move hint encodings off rd=x0", func() {
		Expect(correct(0x00000037)).To(Equal([]uint32{0x00000337}))
		Expect(correct(0x00000017)).To(Equal([]uint32{0x00000317}))
		Expect(correct(0x00001033)).To(Equal([]uint32{0x00001333}))
		Expect(correct(0x0000003b)).To(Equal([]uint32{0x0000033b}))
	})

	It("should leave a non-zero rd alone", func() {
		Expect(correct(0x000000b7)).To(Equal([]uint32{0x000000b7}))
	})

	It("should give loads and stores a non-zero base register", func() {
		Expect(correct(0x00002003)).To(Equal([]uint32{0x0002a003}))
		Expect(correct(0x00000023)).To(Equal([]uint32{0x00028023}))
		Expect(correct(0x00012003)).To(Equal([]uint32{0x00012003}))
	})

	It("should honour the configured registers", func() {
		opts.HintRegister = 1
		opts.BaseRegister = 31
		Expect(correct(0x00000037, 0x00000003)).To(Equal([]uint32{0x000000b7, 0x000f8003}))
	})

	It("should move AMO widths 2 and 3 down by two", func() {
		Expect(correct(0x0000202f, 0x0000302f, 0x0000402f)).
			To(Equal([]uint32{0x0000002f, 0x0000102f, 0x0000402f}))
	})

	It("should leave fences alone unless asked", func() {
		Expect(correct(0x0000100f)).To(Equal([]uint32{0x0000100f}))

		opts.FenceCorrection = true
		Expect(correct(0x0000100f)).To(Equal([]uint32{0x0010100f}))
		Expect(correct(0x0000000f)).To(Equal([]uint32{0x0000000f}))
	})

	It("should not touch other opcodes", func() {
		Expect(correct(0x00000053, 0x0000006f)).To(Equal([]uint32{0x00000053, 0x0000006f}))
	})

	It("should be stable on its own output", func() {
		words, err := illegal.Generate("RV64IMAFD")
		Expect(err).NotTo(HaveOccurred())

		again := append([]uint32(nil), words...)
		illegal.Correct(again, illegal.DefaultOptions())
		Expect(again).To(Equal(words))
	})
})
