package sequencer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fizzbuzz/classifier"
)

// Separator joins consecutive terms.
const Separator = " "

// Sentinel errors returned by the sequencer.
var (
	// ErrInvalidArgument indicates a negative term count. It wraps
	// classifier.ErrInvalidArgument, so a single errors.Is check against
	// either sentinel catches it.
	ErrInvalidArgument = fmt.Errorf("sequencer: term count must be non-negative: %w", classifier.ErrInvalidArgument)

	// ErrNilDecider indicates that WithDecider was given a nil function.
	ErrNilDecider = errors.New("sequencer: decider is nil")
)

// Decider maps one integer of the sequence to its term.
type Decider func(n int) (string, error)

// Options configures a Sequencer.
//
// Decider – the per-term step; defaults to classifier.Decide.
type Options struct {
	Decider Decider
}

// Option represents a functional option for configuring a Sequencer.
type Option func(*Options)

// DefaultOptions returns Options wired to the standard classifier.
func DefaultOptions() Options {
	return Options{
		Decider: classifier.Decide,
	}
}

// WithDecider replaces the per-term step. Panics with ErrNilDecider if d is nil.
func WithDecider(d Decider) Option {
	if d == nil {
		panic(ErrNilDecider.Error())
	}

	return func(o *Options) {
		o.Decider = d
	}
}

// WithRules builds the per-term step from a classifier using rules.
// A nil rules selects classifier.Standard.
func WithRules(rules classifier.Rules) Option {
	c := classifier.New(rules)

	return func(o *Options) {
		o.Decider = c.Decide
	}
}
