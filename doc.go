// Package fizzbuzz computes the classic FizzBuzz sequence.
//
// For every integer 1..N the sequence holds "fizz" for multiples of 3,
// "buzz" for multiples of 5, "fizzbuzz" for multiples of both, and the
// decimal text of the number otherwise, joined by single spaces:
//
//	1 2 fizz 4 buzz fizz 7 8 fizz buzz 11 fizz 13 14 fizzbuzz
//
// The work is split across two subpackages:
//
//	classifier/ — decides the category of one positive integer and renders it;
//	              predicates and renderers are injectable via Rules / Funcs
//	sequencer/  — runs a Decider over 1..N in order and joins the terms
//
// Both are pure: no I/O, no shared mutable state, no goroutines.
//
//	go get github.com/katalvlaran/fizzbuzz
package fizzbuzz
