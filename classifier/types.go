// Package classifier defines categories, rule sets, options and sentinel
// errors for FizzBuzz classification.
package classifier

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the classifier.
var (
	// ErrInvalidArgument indicates that a non-positive integer was passed to
	// Decide or Classify.
	ErrInvalidArgument = errors.New("classifier: n must be a positive integer")
)

// Category is the FizzBuzz class of a positive integer.
type Category int

const (
	// Plain numbers match none of the other categories.
	Plain Category = iota
	// Fizz numbers are multiples of 3 but not of 5.
	Fizz
	// Buzz numbers are multiples of 5 but not of 3.
	Buzz
	// FizzBuzz numbers are multiples of 15.
	FizzBuzz
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Plain:
		return "plain"
	case Fizz:
		return "fizz"
	case Buzz:
		return "buzz"
	case FizzBuzz:
		return "fizzbuzz"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// Rules supplies the category predicates and renderers used by a Classifier.
//
// Decide consults the predicates in the order IsFizzBuzz, IsFizz, IsBuzz and
// calls exactly one renderer: the one paired with the first predicate that
// holds, or RenderPlain if none does.
type Rules interface {
	IsFizz(n int) bool
	IsBuzz(n int) bool
	IsFizzBuzz(n int) bool
	RenderFizz(n int) string
	RenderBuzz(n int) string
	RenderFizzBuzz(n int) string
	RenderPlain(n int) string
}

// Predicate reports whether n belongs to a category.
type Predicate func(n int) bool

// Renderer produces the text for n once its category is known.
type Renderer func(n int) string

// Funcs is a Rules assembled from function values.
// Use NewFuncs to get one pre-filled with the standard functions. The zero
// value and a nil *Funcs are usable: any unset function behaves as Standard.
type Funcs struct {
	isFizz         Predicate
	isBuzz         Predicate
	isFizzBuzz     Predicate
	renderFizz     Renderer
	renderBuzz     Renderer
	renderFizzBuzz Renderer
	renderPlain    Renderer
}

// Option overrides one function of a Funcs.
type Option func(*Funcs)

// WithIsFizz replaces the fizz predicate. Panics if p is nil.
func WithIsFizz(p Predicate) Option {
	mustPredicate(p, "WithIsFizz")
	return func(f *Funcs) { f.isFizz = p }
}

// WithIsBuzz replaces the buzz predicate. Panics if p is nil.
func WithIsBuzz(p Predicate) Option {
	mustPredicate(p, "WithIsBuzz")
	return func(f *Funcs) { f.isBuzz = p }
}

// WithIsFizzBuzz replaces the fizzbuzz predicate. Panics if p is nil.
func WithIsFizzBuzz(p Predicate) Option {
	mustPredicate(p, "WithIsFizzBuzz")
	return func(f *Funcs) { f.isFizzBuzz = p }
}

// WithRenderFizz replaces the fizz renderer. Panics if r is nil.
func WithRenderFizz(r Renderer) Option {
	mustRenderer(r, "WithRenderFizz")
	return func(f *Funcs) { f.renderFizz = r }
}

// WithRenderBuzz replaces the buzz renderer. Panics if r is nil.
func WithRenderBuzz(r Renderer) Option {
	mustRenderer(r, "WithRenderBuzz")
	return func(f *Funcs) { f.renderBuzz = r }
}

// WithRenderFizzBuzz replaces the fizzbuzz renderer. Panics if r is nil.
func WithRenderFizzBuzz(r Renderer) Option {
	mustRenderer(r, "WithRenderFizzBuzz")
	return func(f *Funcs) { f.renderFizzBuzz = r }
}

// WithRenderPlain replaces the plain renderer. Panics if r is nil.
func WithRenderPlain(r Renderer) Option {
	mustRenderer(r, "WithRenderPlain")
	return func(f *Funcs) { f.renderPlain = r }
}

// NewFuncs returns a Funcs initialized with the standard predicates and
// renderers, then applies opts in order.
func NewFuncs(opts ...Option) *Funcs {
	f := &Funcs{
		isFizz:         IsFizz,
		isBuzz:         IsBuzz,
		isFizzBuzz:     IsFizzBuzz,
		renderFizz:     renderFizz,
		renderBuzz:     renderBuzz,
		renderFizzBuzz: renderFizzBuzz,
		renderPlain:    strconv.Itoa,
	}
	var opt Option
	for _, opt = range opts {
		opt(f)
	}

	return f
}

// IsFizz reports whether n is a fizz number under f.
func (f *Funcs) IsFizz(n int) bool {
	if f == nil || f.isFizz == nil {
		return IsFizz(n)
	}
	return f.isFizz(n)
}

// IsBuzz reports whether n is a buzz number under f.
func (f *Funcs) IsBuzz(n int) bool {
	if f == nil || f.isBuzz == nil {
		return IsBuzz(n)
	}
	return f.isBuzz(n)
}

// IsFizzBuzz reports whether n is a fizzbuzz number under f.
func (f *Funcs) IsFizzBuzz(n int) bool {
	if f == nil || f.isFizzBuzz == nil {
		return IsFizzBuzz(n)
	}
	return f.isFizzBuzz(n)
}

// RenderFizz returns the text for a fizz number.
func (f *Funcs) RenderFizz(n int) string {
	if f == nil || f.renderFizz == nil {
		return renderFizz(n)
	}
	return f.renderFizz(n)
}

// RenderBuzz returns the text for a buzz number.
func (f *Funcs) RenderBuzz(n int) string {
	if f == nil || f.renderBuzz == nil {
		return renderBuzz(n)
	}
	return f.renderBuzz(n)
}

// RenderFizzBuzz returns the text for a fizzbuzz number.
func (f *Funcs) RenderFizzBuzz(n int) string {
	if f == nil || f.renderFizzBuzz == nil {
		return renderFizzBuzz(n)
	}
	return f.renderFizzBuzz(n)
}

// RenderPlain returns the text for a number in no other category.
func (f *Funcs) RenderPlain(n int) string {
	if f == nil || f.renderPlain == nil {
		return strconv.Itoa(n)
	}
	return f.renderPlain(n)
}

// mustPredicate and mustRenderer reject nil option arguments.
func mustPredicate(p Predicate, name string) {
	if p == nil {
		panic("classifier: " + name + ": nil predicate")
	}
}

func mustRenderer(r Renderer, name string) {
	if r == nil {
		panic("classifier: " + name + ": nil renderer")
	}
}
