package illegal

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("combinations", func() {
	collect := func(n, k int) (chosen, rest [][]int) {
		combinations(n, k, func(c, r []int) {
			chosen = append(chosen, append([]int(nil), c...))
			rest = append(rest, append([]int(nil), r...))
		})
		return chosen, rest
	}

	It("should list subsets in lexicographic order", func() {
		chosen, rest := collect(4, 2)
		Expect(chosen).To(Equal([][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}))
		Expect(rest).To(Equal([][]int{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}}))
	})

	It("should give an empty complement for the full set", func() {
		chosen, rest := collect(3, 3)
		Expect(chosen).To(Equal([][]int{{0, 1, 2}}))
		Expect(rest).To(HaveLen(1))
		Expect(rest[0]).To(BeEmpty())
	})

	It("should produce nothing for out-of-range sizes", func() {
		chosen, _ := collect(3, 0)
		Expect(chosen).To(BeEmpty())
		chosen, _ = collect(3, 4)
		Expect(chosen).To(BeEmpty())
	})
})
