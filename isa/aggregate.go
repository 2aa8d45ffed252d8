package isa

import (
	"github.com/bits-and-blooms/bitset"
)

// ValueSet is a set of values of a single bit range.
type ValueSet struct {
	width uint
	bits  *bitset.BitSet
}

func newValueSet(width uint) *ValueSet {
	return &ValueSet{
		width: width,
		bits:  bitset.New(uint(1) << width),
	}
}

func (s *ValueSet) Add(v uint32) {
	s.bits.Set(uint(v))
}

func (s *ValueSet) Has(v uint32) bool {
	return s.bits.Test(uint(v))
}

// Values returns the members in ascending order.
func (s *ValueSet) Values() []uint32 {
	ret := make([]uint32, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ret = append(ret, uint32(i))
	}
	return ret
}

// Complement returns every value of the range's full 2^width space that is
// not in s.
func (s *ValueSet) Complement() *ValueSet {
	return &ValueSet{
		width: s.width,
		bits:  s.bits.Complement(),
	}
}

// fieldSet is the constraint space of one opcode: its constant ranges in
// first-seen order and the legal values of each.
type fieldSet struct {
	ranges    []BitRange
	legal     map[BitRange]*ValueSet
	mnemonics []string
}

// ConstraintMap records, per major opcode, every legal value seen for each
// constant bit range across all instructions sharing that opcode.
type ConstraintMap struct {
	order  []Opcode
	fields map[Opcode]*fieldSet
}

func newConstraintMap() *ConstraintMap {
	return &ConstraintMap{
		fields: make(map[Opcode]*fieldSet),
	}
}

// Aggregate merges the constant fields of specs per opcode.
func Aggregate(specs []InstructionSpec) *ConstraintMap {
	m := newConstraintMap()
	for _, spec := range specs {
		fs := m.fieldsFor(spec.Opcode)
		fs.mnemonics = append(fs.mnemonics, spec.Mnemonic)
		for _, c := range spec.Fields {
			fs.legalFor(c.Range).Add(c.Value)
		}
	}
	return m
}

func (m *ConstraintMap) fieldsFor(op Opcode) *fieldSet {
	fs, ok := m.fields[op]
	if !ok {
		fs = &fieldSet{legal: make(map[BitRange]*ValueSet)}
		m.fields[op] = fs
		m.order = append(m.order, op)
	}
	return fs
}

func (fs *fieldSet) legalFor(r BitRange) *ValueSet {
	vs, ok := fs.legal[r]
	if !ok {
		vs = newValueSet(r.Width())
		fs.legal[r] = vs
		fs.ranges = append(fs.ranges, r)
	}
	return vs
}

// Opcodes returns the known opcodes in the order they were first seen.
func (m *ConstraintMap) Opcodes() []Opcode {
	return append([]Opcode(nil), m.order...)
}

func (m *ConstraintMap) Has(op Opcode) bool {
	_, ok := m.fields[op]
	return ok
}

// Ranges returns the constant ranges of op in the order they were first seen.
func (m *ConstraintMap) Ranges(op Opcode) []BitRange {
	fs, ok := m.fields[op]
	if !ok {
		return nil
	}
	return append([]BitRange(nil), fs.ranges...)
}

// Legal returns the legal values of r under op, or nil if op never
// constrains r.
func (m *ConstraintMap) Legal(op Opcode, r BitRange) *ValueSet {
	fs, ok := m.fields[op]
	if !ok {
		return nil
	}
	return fs.legal[r]
}

// Illegal returns the values of r under op that no instruction declares.
func (m *ConstraintMap) Illegal(op Opcode, r BitRange) *ValueSet {
	legal := m.Legal(op, r)
	if legal == nil {
		return nil
	}
	return legal.Complement()
}

// Mnemonics lists the instructions that contributed to op.
func (m *ConstraintMap) Mnemonics(op Opcode) []string {
	fs, ok := m.fields[op]
	if !ok {
		return nil
	}
	return append([]string(nil), fs.mnemonics...)
}

// FullyLegal reports whether every constant range of word's opcode holds a
// legal value. Words with an unknown opcode are never fully legal.
func (m *ConstraintMap) FullyLegal(word uint32) bool {
	fs, ok := m.fields[OpcodeOf(word)]
	if !ok {
		return false
	}
	for _, r := range fs.ranges {
		if !fs.legal[r].Has(r.Extract(word)) {
			return false
		}
	}
	return true
}

// FieldConstraint is a flattened view of one range's legal values.
type FieldConstraint struct {
	Range BitRange
	Legal []uint32
}

// OpcodeConstraints is a flattened view of one opcode's entry.
type OpcodeConstraints struct {
	Opcode    Opcode
	Mnemonics []string
	Fields    []FieldConstraint
}

// Entries flattens the map into plain values, in opcode order, for display.
func (m *ConstraintMap) Entries() []OpcodeConstraints {
	ret := make([]OpcodeConstraints, 0, len(m.order))
	for _, op := range m.order {
		fs := m.fields[op]
		entry := OpcodeConstraints{
			Opcode:    op,
			Mnemonics: append([]string(nil), fs.mnemonics...),
		}
		for _, r := range fs.ranges {
			entry.Fields = append(entry.Fields, FieldConstraint{
				Range: r,
				Legal: fs.legal[r].Values(),
			})
		}
		ret = append(ret, entry)
	}
	return ret
}
