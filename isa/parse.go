package isa

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxFieldWidth bounds constant ranges so that a range's value space can be
// enumerated. The widest constant in the compiled-in tables is the 12-bit
// 31..20 of ecall and ebreak.
const maxFieldWidth = 20

// Constant asserts that Range holds exactly Value.
type Constant struct {
	Range BitRange
	Value uint32
}

// InstructionSpec is one parsed line of an encoding table.
//
// The opcode-defining ranges 6..2 and 1..0 are folded into Opcode and never
// appear in Fields, so every entry of Fields is a candidate for perturbation.
type InstructionSpec struct {
	Mnemonic string
	Operands []string
	Opcode   Opcode
	Fields   []Constant
}

// Word returns the instruction word with every constant field set and every
// operand zeroed.
func (s InstructionSpec) Word() uint32 {
	w := uint32(s.Opcode)
	for _, c := range s.Fields {
		w |= c.Range.Place(c.Value)
	}
	return w
}

// Matches reports whether word satisfies every constant of s.
func (s InstructionSpec) Matches(word uint32) bool {
	if OpcodeOf(word) != s.Opcode {
		return false
	}
	for _, c := range s.Fields {
		if c.Range.Extract(word) != c.Value {
			return false
		}
	}
	return true
}

// ParseError describes a malformed encoding line.
type ParseError struct {
	Line   string
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid encoding %q: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid encoding %q at %q: %s", e.Line, e.Token, e.Reason)
}

type tokenKind int

const (
	tokenOperand tokenKind = iota
	tokenConstant
)

type token struct {
	kind tokenKind
	raw  string

	// only for tokenConstant
	rng   BitRange
	value uint32
}

// ParseSpec parses a single encoding line of the form
//
//	mnemonic operand... high..low=value...
//
// where operands and constants may be freely interleaved.
func ParseSpec(line string) (InstructionSpec, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return InstructionSpec{}, &ParseError{Line: line, Reason: "empty line"}
	}
	spec := InstructionSpec{Mnemonic: fields[0]}
	if !unicode.IsLetter(rune(spec.Mnemonic[0])) {
		return InstructionSpec{}, &ParseError{Line: line, Token: spec.Mnemonic, Reason: "mnemonic must start with a letter"}
	}

	var major, quadrant *uint32
	for _, raw := range fields[1:] {
		tok, err := lexToken(raw)
		if err != nil {
			err.Line = line
			return InstructionSpec{}, err
		}
		if tok.kind == tokenOperand {
			spec.Operands = append(spec.Operands, tok.raw)
			continue
		}

		for _, c := range spec.Fields {
			if c.Range.Overlaps(tok.rng) {
				return InstructionSpec{}, &ParseError{Line: line, Token: raw, Reason: fmt.Sprintf("overlaps %s", c.Range)}
			}
		}
		v := tok.value
		switch tok.rng {
		case majorRange:
			if major != nil {
				return InstructionSpec{}, &ParseError{Line: line, Token: raw, Reason: "duplicate opcode range"}
			}
			major = &v
		case quadrantRange:
			if quadrant != nil {
				return InstructionSpec{}, &ParseError{Line: line, Token: raw, Reason: "duplicate opcode range"}
			}
			quadrant = &v
		default:
			if tok.rng.Overlaps(BitRange{High: 6, Low: 0}) {
				return InstructionSpec{}, &ParseError{Line: line, Token: raw, Reason: "splits the opcode field"}
			}
			spec.Fields = append(spec.Fields, Constant{Range: tok.rng, Value: v})
		}
	}

	if major == nil || quadrant == nil {
		return InstructionSpec{}, &ParseError{Line: line, Reason: "missing 6..2 or 1..0 opcode constant"}
	}
	spec.Opcode = Opcode(*major<<2 + *quadrant)
	return spec, nil
}

// ParseTable parses a block of encoding lines, one per line. Blank lines and
// "#" comments are skipped.
func ParseTable(text string) ([]InstructionSpec, error) {
	var ret []InstructionSpec
	for _, line := range strings.Split(text, "\n") {
		line = trimComments(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		spec, err := ParseSpec(line)
		if err != nil {
			return nil, err
		}
		ret = append(ret, spec)
	}
	return ret, nil
}

func lexToken(raw string) (token, *ParseError) {
	if unicode.IsLetter(rune(raw[0])) {
		for _, r := range raw {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return token{}, &ParseError{Token: raw, Reason: "operand names are alphanumeric"}
			}
		}
		return token{kind: tokenOperand, raw: raw}, nil
	}

	rawRng, rawWant := partition(raw, "=")
	if rawWant == "" {
		return token{}, &ParseError{Token: raw, Reason: "expected high..low=value"}
	}
	rawEnd, rawStart := partition(rawRng, "..")
	end, err := strconv.ParseUint(rawEnd, 10, 8)
	if err != nil {
		return token{}, &ParseError{Token: raw, Reason: "bad high bit position"}
	}
	start, err := strconv.ParseUint(rawStart, 10, 8)
	if err != nil {
		return token{}, &ParseError{Token: raw, Reason: "bad low bit position"}
	}
	if end < start || end > 31 {
		return token{}, &ParseError{Token: raw, Reason: "bit range must satisfy 31 >= high >= low"}
	}
	rng := BitRange{High: uint(end), Low: uint(start)}
	if rng.Width() > maxFieldWidth {
		return token{}, &ParseError{Token: raw, Reason: fmt.Sprintf("constant wider than %d bits", maxFieldWidth)}
	}

	want, err := parseValue(rawWant)
	if err != nil {
		return token{}, &ParseError{Token: raw, Reason: "bad value"}
	}
	if want >= uint64(1)<<rng.Width() {
		return token{}, &ParseError{Token: raw, Reason: fmt.Sprintf("value does not fit in %d bits", rng.Width())}
	}
	return token{kind: tokenConstant, raw: raw, rng: rng, value: uint32(want)}, nil
}

// parseValue reads a constant value: decimal, or hexadecimal after a "0x"
// prefix.
func parseValue(raw string) (uint64, error) {
	if hex, ok := strings.CutPrefix(raw, "0x"); ok {
		return strconv.ParseUint(hex, 16, 32)
	}
	return strconv.ParseUint(raw, 10, 32)
}

func trimComments(line string) string {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return line
	}
	return line[:hash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
