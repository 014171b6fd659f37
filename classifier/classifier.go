package classifier

import (
	"fmt"
	"strconv"
)

const (
	fizzText     = "fizz"
	buzzText     = "buzz"
	fizzBuzzText = "fizzbuzz"
)

// Standard is the canonical rule set: multiples of 3, 5 and 15, rendered as
// "fizz", "buzz", "fizzbuzz", and plain decimal text otherwise.
var Standard Rules = standardRules{}

var std = New(Standard)

// IsFizz reports whether n is a multiple of 3.
func IsFizz(n int) bool { return n%3 == 0 }

// IsBuzz reports whether n is a multiple of 5.
func IsBuzz(n int) bool { return n%5 == 0 }

// IsFizzBuzz reports whether n is a multiple of both 3 and 5.
func IsFizzBuzz(n int) bool { return IsFizz(n) && IsBuzz(n) }

func renderFizz(int) string { return fizzText }
func renderBuzz(int) string { return buzzText }
func renderFizzBuzz(int) string { return fizzBuzzText }

type standardRules struct{}

func (standardRules) IsFizz(n int) bool { return IsFizz(n) }
func (standardRules) IsBuzz(n int) bool { return IsBuzz(n) }
func (standardRules) IsFizzBuzz(n int) bool { return IsFizzBuzz(n) }
func (standardRules) RenderFizz(n int) string { return renderFizz(n) }
func (standardRules) RenderBuzz(n int) string { return renderBuzz(n) }
func (standardRules) RenderFizzBuzz(n int) string { return renderFizzBuzz(n) }
func (standardRules) RenderPlain(n int) string { return strconv.Itoa(n) }

// Classifier applies a Rules to positive integers.
type Classifier struct {
	rules Rules
}

// New returns a Classifier backed by rules. A nil rules selects Standard.
func New(rules Rules) *Classifier {
	if rules == nil {
		rules = Standard
	}

	return &Classifier{rules: rules}
}

// Rules returns the rule set in use.
func (c *Classifier) Rules() Rules { return c.rules }

// Classify returns the category of n without rendering it.
// Returns ErrInvalidArgument if n ≤ 0.
func (c *Classifier) Classify(n int) (Category, error) {
	if n <= 0 {
		return Plain, fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}

	switch {
	case c.rules.IsFizzBuzz(n):
		return FizzBuzz, nil
	case c.rules.IsFizz(n):
		return Fizz, nil
	case c.rules.IsBuzz(n):
		return Buzz, nil
	default:
		return Plain, nil
	}
}

// Decide classifies n and returns the text produced by the matching
// renderer. Exactly one renderer runs per successful call; none runs when
// n ≤ 0, in which case the error wraps ErrInvalidArgument.
func (c *Classifier) Decide(n int) (string, error) {
	cat, err := c.Classify(n)
	if err != nil {
		return "", err
	}

	return c.Render(cat, n), nil
}

// Render returns the text for n under category cat. It does not check that
// n actually belongs to cat.
func (c *Classifier) Render(cat Category, n int) string {
	switch cat {
	case FizzBuzz:
		return c.rules.RenderFizzBuzz(n)
	case Fizz:
		return c.rules.RenderFizz(n)
	case Buzz:
		return c.rules.RenderBuzz(n)
	default:
		return c.rules.RenderPlain(n)
	}
}

// Decide is Classifier.Decide with the Standard rules.
func Decide(n int) (string, error) { return std.Decide(n) }

// Classify is Classifier.Classify with the Standard rules.
func Classify(n int) (Category, error) { return std.Classify(n) }
