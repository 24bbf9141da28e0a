package rag

import (
	"errors"
	"fmt"
)

const (
	DefaultK                   = 10
	DefaultBypassThreshold     = 15
	DefaultMinChunkWords       = 50
	DefaultMaxChunkWords       = 300
	DefaultMinParagraphWords   = 8
	DefaultBoilerplateMaxWords = 30
	DefaultBM25K1              = 1.2
	DefaultBM25B               = 0.75
	DefaultLeadBonus           = 0.15
	DefaultFallbackChars       = 3000
)

// ErrInvalidArgument is wrapped by every precondition failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Options carries every tunable of the selection pipeline.
type Options struct {
	// K is the number of passages kept when ranking.
	K int
	// BypassThreshold is the chunk count at or below which no ranking happens.
	BypassThreshold     int
	MinChunkWords       int
	MaxChunkWords       int
	MinParagraphWords   int
	BoilerplateMaxWords int
	K1                  float64
	B                   float64
	// LeadBonus is the fraction of the top score granted to the first chunk,
	// decaying linearly to zero at the end of the document.
	LeadBonus     float64
	FallbackChars int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		K:                   DefaultK,
		BypassThreshold:     DefaultBypassThreshold,
		MinChunkWords:       DefaultMinChunkWords,
		MaxChunkWords:       DefaultMaxChunkWords,
		MinParagraphWords:   DefaultMinParagraphWords,
		BoilerplateMaxWords: DefaultBoilerplateMaxWords,
		K1:                  DefaultBM25K1,
		B:                   DefaultBM25B,
		LeadBonus:           DefaultLeadBonus,
		FallbackChars:       DefaultFallbackChars,
	}
}

// Validate reports the first option that violates a precondition.
func (o Options) Validate() error {
	switch {
	case o.K < 0:
		return fmt.Errorf("%w: k must be zero or greater, got %d", ErrInvalidArgument, o.K)
	case o.BypassThreshold < 0:
		return fmt.Errorf("%w: bypassThreshold must be zero or greater, got %d", ErrInvalidArgument, o.BypassThreshold)
	case o.MinChunkWords <= 0:
		return fmt.Errorf("%w: minChunkWords must be greater than zero, got %d", ErrInvalidArgument, o.MinChunkWords)
	case o.MaxChunkWords <= 0:
		return fmt.Errorf("%w: maxChunkWords must be greater than zero, got %d", ErrInvalidArgument, o.MaxChunkWords)
	case o.MinChunkWords > o.MaxChunkWords:
		return fmt.Errorf("%w: minChunkWords (%d) must not exceed maxChunkWords (%d)", ErrInvalidArgument, o.MinChunkWords, o.MaxChunkWords)
	case o.MinParagraphWords < 0:
		return fmt.Errorf("%w: minParagraphWords must be zero or greater, got %d", ErrInvalidArgument, o.MinParagraphWords)
	case o.BoilerplateMaxWords < 0:
		return fmt.Errorf("%w: boilerplateMaxWords must be zero or greater, got %d", ErrInvalidArgument, o.BoilerplateMaxWords)
	case o.K1 < 0:
		return fmt.Errorf("%w: bm25K1 must be zero or greater, got %g", ErrInvalidArgument, o.K1)
	case o.B < 0 || o.B > 1:
		return fmt.Errorf("%w: bm25B must be within [0, 1], got %g", ErrInvalidArgument, o.B)
	case o.LeadBonus < 0:
		return fmt.Errorf("%w: leadBonus must be zero or greater, got %g", ErrInvalidArgument, o.LeadBonus)
	case o.FallbackChars < 0:
		return fmt.Errorf("%w: fallbackChars must be zero or greater, got %d", ErrInvalidArgument, o.FallbackChars)
	}
	return nil
}
