// Package probability implements the inference and sampling engine behind the games:
// belief updating over a finite set of hypotheses, weighted outcome sampling and
// expected-value computation. Everything here is synchronous and side-effect free.
package probability

import "errors"

// Epsilon is the tolerance used when checking that probabilities sum to 1.
const Epsilon = 1e-6

var (
	// ErrInvalidInput is returned when an operation receives no hypotheses or outcomes,
	// or input that cannot be identified.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDistribution is returned when probabilities are negative, not finite,
	// or do not sum to 1 within Epsilon.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidState is returned by an Investigation when an action is not allowed in its current state.
	ErrInvalidState = errors.New("invalid investigation state")

	// ErrNoMoreEvidence is returned when every piece of evidence has already been applied.
	ErrNoMoreEvidence = errors.New("no more evidence")
)
