// Package sequencer produces the FizzBuzz sequence for 1..n as a single
// space-separated string.
//
// Overview:
//
//   - Each integer i in 1..n is passed, in ascending order, to a Decider
//     (by default classifier.Decide) exactly once.
//   - The resulting terms are joined with one ASCII space: no leading or
//     trailing space, no newline.
//
// Edge cases:
//
//   - n == 0 yields "" and a nil error; the Decider is never invoked.
//   - n < 0 yields ErrInvalidArgument; the Decider is never invoked.
//   - If the Decider fails for some i, production stops, no partial output
//     is returned, and the error is wrapped with i (errors.Is still matches
//     the Decider's own sentinel).
//
// Injection:
//
//	s := sequencer.New(sequencer.WithRules(myRules))       // swap category steps
//	s := sequencer.New(sequencer.WithDecider(stubDecider)) // swap the whole step
//
// Complexity:
//
//   - Time:  O(n) Decider calls plus O(total output length) for the join.
//   - Space: O(total output length).
package sequencer
