package illegal

import (
	"fmt"
	"io"
	"log/slog"
)

// Coverage selects how the enumerator combines perturbed and held ranges.
type Coverage int

const (
	// CoveragePairwise varies one illegal range against one legal range per
	// emitted word.
	CoveragePairwise Coverage = iota

	// CoverageCartesian emits the full product of illegal values over the
	// perturbed ranges and legal values over the held ranges.
	CoverageCartesian
)

func (c Coverage) String() string {
	switch c {
	case CoveragePairwise:
		return "pairwise"
	case CoverageCartesian:
		return "cartesian"
	}
	return fmt.Sprintf("Coverage(%d)", int(c))
}

// ParseCoverage is the inverse of Coverage.String.
func ParseCoverage(s string) (Coverage, error) {
	switch s {
	case "pairwise", "":
		return CoveragePairwise, nil
	case "cartesian":
		return CoverageCartesian, nil
	}
	return 0, fmt.Errorf("unknown coverage mode %q", s)
}

// Options tunes generation. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Coverage Coverage

	// HintRegister replaces a zero rd on opcodes where rd=x0 is a hint.
	HintRegister uint32

	// BaseRegister replaces a zero rs1 on loads and stores.
	BaseRegister uint32

	// FenceCorrection also rewrites fences whose rd is zero and whose bits
	// 14..12 are non-zero. Off by default, which leaves such words as
	// enumerated.
	FenceCorrection bool

	// DropLegal removes, after correction, every word that decodes to an
	// instruction of the ISA. This includes the shift-immediate and SYSTEM
	// encodings that enumeration does not model.
	DropLegal bool

	Logger *slog.Logger
}

// DefaultOptions returns x6 for hints, x5 as the base register, pairwise
// coverage and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Coverage:     CoveragePairwise,
		HintRegister: 6,
		BaseRegister: 5,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

type Option func(*Options)

func WithCoverage(c Coverage) Option {
	return func(o *Options) {
		o.Coverage = c
	}
}

func WithHintRegister(reg uint32) Option {
	return func(o *Options) {
		o.HintRegister = reg
	}
}

func WithBaseRegister(reg uint32) Option {
	return func(o *Options) {
		o.BaseRegister = reg
	}
}

func WithFenceCorrection(enabled bool) Option {
	return func(o *Options) {
		o.FenceCorrection = enabled
	}
}

func WithDropLegal(enabled bool) Option {
	return func(o *Options) {
		o.DropLegal = enabled
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func (o Options) validate() error {
	if o.HintRegister == 0 || o.HintRegister > 31 {
		return fmt.Errorf("hint register must be x1..x31, got x%d", o.HintRegister)
	}
	if o.BaseRegister == 0 || o.BaseRegister > 31 {
		return fmt.Errorf("base register must be x1..x31, got x%d", o.BaseRegister)
	}
	if o.Coverage != CoveragePairwise && o.Coverage != CoverageCartesian {
		return fmt.Errorf("unknown coverage mode %s", o.Coverage)
	}
	return nil
}
