package probability

import (
	"fmt"
	"math"
)

// Outcome is a single entry of a Distribution.
type Outcome struct {
	ID          string
	Value       float64
	Probability float64
}

// Distribution is an ordered, validated set of outcomes whose probabilities sum to 1.
// The zero value is not valid; build one with NewDistribution or Binary.
type Distribution struct {
	outcomes []Outcome
}

// NewDistribution validates outcomes and returns a Distribution over them.
// The slice is copied, so later changes by the caller are not observed.
func NewDistribution(outcomes []Outcome) (Distribution, error) {
	if len(outcomes) == 0 {
		return Distribution{}, fmt.Errorf("%w: %w: no outcomes", ErrInvalidDistribution, ErrInvalidInput)
	}

	var sum float64
	for i, o := range outcomes {
		if math.IsNaN(o.Probability) || math.IsInf(o.Probability, 0) {
			return Distribution{}, fmt.Errorf("%w: outcome %d (%q) has non-finite probability", ErrInvalidDistribution, i, o.ID)
		}
		if o.Probability < 0 {
			return Distribution{}, fmt.Errorf("%w: outcome %d (%q) has negative probability %v", ErrInvalidDistribution, i, o.ID, o.Probability)
		}
		sum += o.Probability
	}
	if math.Abs(sum-1) > Epsilon {
		return Distribution{}, fmt.Errorf("%w: probabilities sum to %v", ErrInvalidDistribution, sum)
	}

	copied := make([]Outcome, len(outcomes))
	copy(copied, outcomes)
	return Distribution{outcomes: copied}, nil
}

// Binary builds the two-outcome success/failure distribution used by games where a single
// attempt either pays reward with probability p or costs penalty otherwise.
func Binary(successID, failureID string, p, reward, penalty float64) (Distribution, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Distribution{}, fmt.Errorf("%w: success probability %v outside [0, 1]", ErrInvalidDistribution, p)
	}
	return NewDistribution([]Outcome{
		{ID: successID, Value: reward, Probability: p},
		{ID: failureID, Value: penalty, Probability: 1 - p},
	})
}

// Valid reports whether d was produced by a successful validation.
func (d Distribution) Valid() bool {
	return len(d.outcomes) > 0
}

// Len returns the number of outcomes.
func (d Distribution) Len() int {
	return len(d.outcomes)
}

// Outcomes returns a copy of the outcomes in declared order.
func (d Distribution) Outcomes() []Outcome {
	out := make([]Outcome, len(d.outcomes))
	copy(out, d.outcomes)
	return out
}

// At returns the outcome at index i.
func (d Distribution) At(i int) Outcome {
	return d.outcomes[i]
}

// Probability returns the probability of the outcome with the given ID, or 0 if absent.
func (d Distribution) Probability(id string) float64 {
	var p float64
	for _, o := range d.outcomes {
		if o.ID == id {
			p += o.Probability
		}
	}
	return p
}
