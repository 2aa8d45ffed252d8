// Package illegal computes 32-bit words that do not decode to any legal
// instruction of a given RISC-V ISA, for use as illegal-instruction-trap test
// vectors.
package illegal

import (
	"fmt"

	"github.com/apparentlymart/riscv-illegals/isa"
)

// Generate returns the illegal words for the ISA string, such as "RV64IMAFD".
//
// The result starts with the unused major opcodes followed by the enumerated
// field perturbations of every known opcode, all passed through Correct.
// Duplicates are kept.
//
// By default a few results still decode: the bare SYSTEM opcode 0x00000073 is
// ecall, and the OP-IMM words with funct3 1 or 5 become slli and srli once
// the hint correction gives them a destination (slliw and srliw likewise on
// RV64). WithDropLegal removes these.
func Generate(isaString string, opts ...Option) ([]uint32, error) {
	d, err := isa.ParseDescriptor(isaString)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return GenerateFor(isa.DefaultRegistry(), d, o)
}

// GenerateFor is Generate with an explicit registry and options.
func GenerateFor(reg *isa.Registry, d isa.Descriptor, o Options) ([]uint32, error) {
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	m, err := Analyze(reg, d)
	if err != nil {
		return nil, err
	}

	words := IllegalOpcodes(m)
	nOpcodes := len(words)
	words = append(words, Enumerate(m, o.Coverage)...)
	Correct(words, o)

	dropped := 0
	if o.DropLegal {
		n := len(words)
		words = dropDecodable(reg, d, words)
		dropped = n - len(words)
	}

	if o.Logger != nil {
		o.Logger.Debug("Generated illegal instructions",
			"isa", d.String(),
			"known_opcodes", len(m.Opcodes()),
			"illegal_opcodes", nOpcodes,
			"words", len(words),
			"dropped", dropped,
			"coverage", o.Coverage.String())
	}
	return words, nil
}

// dropDecodable filters words in place, keeping those that no instruction of
// d decodes.
func dropDecodable(reg *isa.Registry, d isa.Descriptor, words []uint32) []uint32 {
	kept := words[:0]
	for _, w := range words {
		if _, ok := reg.Decode(d, w); ok {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// Analyze builds the per-opcode constraint map for d.
func Analyze(reg *isa.Registry, d isa.Descriptor) (*isa.ConstraintMap, error) {
	specs, err := reg.Instructions(d)
	if err != nil {
		return nil, err
	}
	return isa.Aggregate(specs), nil
}
