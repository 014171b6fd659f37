// Package classifier_test provides runnable examples for the classifier.
package classifier_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fizzbuzz/classifier"
)

// ExampleDecide classifies a few integers with the standard rules.
func ExampleDecide() {
	for _, n := range []int{7, 9, 20, 45} {
		s, _ := classifier.Decide(n)
		fmt.Println(n, s)
	}
	// Output:
	// 7 7
	// 9 fizz
	// 20 buzz
	// 45 fizzbuzz
}

// ExampleDecide_invalid shows the error for a non-positive input.
func ExampleDecide_invalid() {
	_, err := classifier.Decide(0)
	fmt.Println(errors.Is(err, classifier.ErrInvalidArgument))
	fmt.Println(err)
	// Output:
	// true
	// classifier: n must be a positive integer: got 0
}

// ExampleNewFuncs swaps one renderer while keeping the standard predicates.
func ExampleNewFuncs() {
	loud := classifier.New(classifier.NewFuncs(
		classifier.WithRenderFizzBuzz(func(int) string { return strings.ToUpper("fizzbuzz") }),
	))
	s, _ := loud.Decide(30)
	fmt.Println(s)
	// Output: FIZZBUZZ
}
