package probability

import (
	"fmt"
	"math"
)

// ExpectedValue returns the probability-weighted sum of outcome values.
// An unvalidated distribution has an expected value of 0.
func ExpectedValue(d Distribution) float64 {
	var ev float64
	for _, o := range d.outcomes {
		ev += o.Probability * o.Value
	}
	return ev
}

// BinaryExpectedValue returns p*reward + (1-p)*penalty.
func BinaryExpectedValue(p, reward, penalty float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: success probability %v outside [0, 1]", ErrInvalidDistribution, p)
	}
	return p*reward + (1-p)*penalty, nil
}

// BestChoice returns the index of the distribution with the highest expected value.
// Ties go to the earliest index.
func BestChoice(ds []Distribution) (int, error) {
	if len(ds) == 0 {
		return 0, fmt.Errorf("%w: no choices", ErrInvalidInput)
	}

	best := -1
	var bestEV float64
	for i, d := range ds {
		if !d.Valid() {
			return 0, fmt.Errorf("%w: choice %d was not validated", ErrInvalidDistribution, i)
		}
		ev := ExpectedValue(d)
		if best < 0 || ev > bestEV {
			best, bestEV = i, ev
		}
	}
	return best, nil
}

// BestChoiceID is BestChoice keyed by identifier; ids[i] names ds[i].
func BestChoiceID(ids []string, ds []Distribution) (string, error) {
	if len(ids) != len(ds) {
		return "", fmt.Errorf("%w: %d ids for %d choices", ErrInvalidInput, len(ids), len(ds))
	}
	i, err := BestChoice(ds)
	if err != nil {
		return "", err
	}
	return ids[i], nil
}
