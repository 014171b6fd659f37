package sequencer

import (
	"fmt"
	"iter"
	"strings"
)

// Sequencer generates FizzBuzz sequences with a configurable Decider.
// It holds no mutable state and is safe for concurrent use.
type Sequencer struct {
	decide Decider
}

var std = New()

// maxPrealloc bounds the up-front capacity of Terms; longer runs grow the slice.
const maxPrealloc = 1 << 16

// New returns a Sequencer configured by opts applied over DefaultOptions.
func New(opts ...Option) *Sequencer {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Sequencer{decide: cfg.Decider}
}

// Terms returns the terms for 1..n in ascending order.
//
// Validation:
//  1. n < 0 returns ErrInvalidArgument.
//  2. n == 0 returns an empty, non-nil slice.
//
// The first Decider error aborts the run; the returned slice is then nil.
func (s *Sequencer) Terms(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}

	terms := make([]string, 0, min(n, maxPrealloc))
	var (
		term string
		err  error
	)
	for i := 1; i <= n; i++ {
		if term, err = s.decide(i); err != nil {
			return nil, fmt.Errorf("sequencer: term %d: %w", i, err)
		}
		terms = append(terms, term)
	}

	return terms, nil
}

// FizzBuzz returns the terms for 1..n joined by Separator.
// n == 0 yields "". On error the returned string is always empty.
func (s *Sequencer) FizzBuzz(n int) (string, error) {
	terms, err := s.Terms(n)
	if err != nil {
		return "", err
	}

	return strings.Join(terms, Separator), nil
}

// All lazily yields (i, term) for i = 1..n. Iteration ends early when the
// consumer stops or the Decider fails; use Terms or FizzBuzz when the error
// itself matters. A negative n yields nothing.
func (s *Sequencer) All(n int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 1; i <= n; i++ {
			term, err := s.decide(i)
			if err != nil || !yield(i, term) {
				return
			}
		}
	}
}

// FizzBuzz is Sequencer.FizzBuzz with the standard classifier.
func FizzBuzz(n int) (string, error) { return std.FizzBuzz(n) }

// Terms is Sequencer.Terms with the standard classifier.
func Terms(n int) ([]string, error) { return std.Terms(n) }

// All is Sequencer.All with the standard classifier.
func All(n int) iter.Seq2[int, string] { return std.All(n) }
