package illegal

import (
	"github.com/apparentlymart/riscv-illegals/isa"
)

// opcodeSpace caches the legal and illegal values of every constant range of
// one opcode, aligned with ranges.
type opcodeSpace struct {
	op      isa.Opcode
	ranges  []isa.BitRange
	legal   [][]uint32
	illegal [][]uint32
}

func newOpcodeSpace(m *isa.ConstraintMap, op isa.Opcode) *opcodeSpace {
	s := &opcodeSpace{op: op, ranges: m.Ranges(op)}
	for _, r := range s.ranges {
		s.legal = append(s.legal, m.Legal(op, r).Values())
		s.illegal = append(s.illegal, m.Illegal(op, r).Values())
	}
	return s
}

// Enumerate produces, for every opcode in m, words in which at least one
// constant range holds a value no sibling instruction declares.
//
// Every non-empty subset of an opcode's ranges is perturbed in turn, smallest
// subsets first. Under CoveragePairwise each word carries one illegal range
// and at most one legal range, leaving the remaining ranges zero.
func Enumerate(m *isa.ConstraintMap, c Coverage) []uint32 {
	var ret []uint32
	emit := func(w uint32) {
		ret = append(ret, w)
	}
	for _, op := range m.Opcodes() {
		s := newOpcodeSpace(m, op)
		n := len(s.ranges)
		for k := 1; k <= n; k++ {
			combinations(n, k, func(perturbed, held []int) {
				switch c {
				case CoverageCartesian:
					s.cartesian(perturbed, held, emit)
				default:
					s.pairwise(perturbed, held, emit)
				}
			})
		}
	}
	return ret
}

func (s *opcodeSpace) pairwise(perturbed, held []int, emit func(uint32)) {
	for _, pi := range perturbed {
		for _, iv := range s.illegal[pi] {
			word := uint32(s.op) | s.ranges[pi].Place(iv)
			if len(held) == 0 {
				emit(word)
				continue
			}
			for _, hi := range held {
				for _, lv := range s.legal[hi] {
					emit(word | s.ranges[hi].Place(lv))
				}
			}
		}
	}
}

func (s *opcodeSpace) cartesian(perturbed, held []int, emit func(uint32)) {
	idx := make([]int, 0, len(perturbed)+len(held))
	vals := make([][]uint32, 0, len(perturbed)+len(held))
	for _, pi := range perturbed {
		idx = append(idx, pi)
		vals = append(vals, s.illegal[pi])
	}
	for _, hi := range held {
		idx = append(idx, hi)
		vals = append(vals, s.legal[hi])
	}
	s.product(idx, vals, uint32(s.op), emit)
}

func (s *opcodeSpace) product(idx []int, vals [][]uint32, acc uint32, emit func(uint32)) {
	if len(idx) == 0 {
		emit(acc)
		return
	}
	r := s.ranges[idx[0]]
	for _, v := range vals[0] {
		s.product(idx[1:], vals[1:], acc|r.Place(v), emit)
	}
}

// combinations calls fn with every k-element subset of [0, n) in
// lexicographic order, together with its complement. The slices are reused
// between calls.
func combinations(n, k int, fn func(chosen, rest []int)) {
	if k <= 0 || k > n {
		return
	}
	chosen := make([]int, k)
	for i := range chosen {
		chosen[i] = i
	}
	rest := make([]int, 0, n-k)
	for {
		rest = rest[:0]
		j := 0
		for i := 0; i < n; i++ {
			if j < k && chosen[j] == i {
				j++
				continue
			}
			rest = append(rest, i)
		}
		fn(chosen, rest)

		i := k - 1
		for i >= 0 && chosen[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		chosen[i]++
		for j := i + 1; j < k; j++ {
			chosen[j] = chosen[j-1] + 1
		}
	}
}
