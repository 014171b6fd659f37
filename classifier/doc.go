// Package classifier decides which FizzBuzz category a positive integer
// belongs to and renders the matching text.
//
// Categories (first match wins):
//
//   - FizzBuzz: multiple of both 3 and 5 → "fizzbuzz"
//   - Fizz:     multiple of 3              → "fizz"
//   - Buzz:     multiple of 5              → "buzz"
//   - Plain:    anything else              → decimal text of n
//
// Key features:
//
//   - Decide / Classify: package-level helpers using the Standard rules.
//   - Rules: the seven category steps (three predicates, four renderers)
//     as an interface, so any of them can be swapped without touching Decide.
//   - Funcs: a Rules built from plain function values via functional options
//     (WithIsFizz, WithRenderPlain, ...), handy for tests and variants.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidArgument:
//     Returned when n ≤ 0. The error wraps the offending value; match it
//     with errors.Is.
//
// API reference:
//
//	func Decide(n int) (string, error)
//	func Classify(n int) (Category, error)
//	func New(rules Rules) *Classifier
//	func NewFuncs(opts ...Option) *Funcs
//
// Complexity:
//
//   - Time:  O(1) arithmetic plus O(digits) for the plain renderer.
//   - Space: O(digits).
//
// Thread safety:
//
//   - Classifier and Funcs are immutable after construction and safe for
//     concurrent use, provided the injected functions are.
package classifier
