package isa

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the parsed encoding tables. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	tables    map[Standard][]InstructionSpec
	excluded  map[Standard][]InstructionSpec
	supported Standards
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return mustBuildRegistry(tableText, excludedText)
})

// DefaultRegistry returns the registry built from the compiled-in tables,
// parsing them on first use. A malformed table line panics.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewRegistry parses the given per-standard tables. The excluded tables hold
// legal encodings that are consulted only by Decode; a standard may appear
// there only if it also has a table in text.
func NewRegistry(text, excluded map[Standard]string) (*Registry, error) {
	r := &Registry{
		tables:    make(map[Standard][]InstructionSpec, len(text)),
		excluded:  make(map[Standard][]InstructionSpec, len(excluded)),
		supported: make(Standards),
	}
	for std, body := range text {
		specs, err := ParseTable(body)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s table: %s", std, err)
		}
		r.tables[std] = specs
		r.supported.Add(std)
	}
	for std, body := range excluded {
		if !r.supported.Has(std) {
			return nil, fmt.Errorf("failed to load excluded %s table: no such standard", std)
		}
		specs, err := ParseTable(body)
		if err != nil {
			return nil, fmt.Errorf("failed to load excluded %s table: %s", std, err)
		}
		r.excluded[std] = specs
	}
	return r, nil
}

func mustBuildRegistry(text, excluded map[Standard]string) *Registry {
	r, err := NewRegistry(text, excluded)
	if err != nil {
		panic(err)
	}
	return r
}

// Extensions lists the extension letters available for the given base
// width, in ascending order.
func (r *Registry) Extensions(size Size) []Extension {
	var ret []Extension
	for std := range r.supported {
		if std.Size() == size {
			ret = append(ret, std.Extension())
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

// Table returns the instructions of a single standard.
func (r *Registry) Table(std Standard) ([]InstructionSpec, bool) {
	specs, ok := r.tables[std]
	return specs, ok
}

// Instructions concatenates the tables selected by d, in descriptor order.
// The returned slice is freshly allocated but its elements share storage
// with the registry and must not be modified.
func (r *Registry) Instructions(d Descriptor) ([]InstructionSpec, error) {
	var ret []InstructionSpec
	for _, std := range d.Standards() {
		if !r.supported.Has(std) {
			return nil, &UnsupportedExtensionError{Size: d.Size, Letter: byte(std.Extension())}
		}
		ret = append(ret, r.tables[std]...)
	}
	return ret, nil
}

// Lookup finds an instruction by mnemonic among all tables of the given
// base width.
func (r *Registry) Lookup(size Size, mnemonic string) (InstructionSpec, bool) {
	for _, ext := range r.Extensions(size) {
		for _, spec := range r.tables[MakeStandard(size, ext)] {
			if spec.Mnemonic == mnemonic {
				return spec, true
			}
		}
	}
	return InstructionSpec{}, false
}

// Decode finds the first instruction of d whose constants all match word,
// looking through the excluded encodings as well as the regular tables.
// Standards of d that the registry does not know are skipped.
func (r *Registry) Decode(d Descriptor, word uint32) (InstructionSpec, bool) {
	for _, std := range d.Standards() {
		specs, ok := r.Table(std)
		if !ok {
			continue
		}
		for _, tab := range [][]InstructionSpec{specs, r.excluded[std]} {
			for _, spec := range tab {
				if spec.Matches(word) {
					return spec, true
				}
			}
		}
	}
	return InstructionSpec{}, false
}
