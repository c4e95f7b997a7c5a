package probability

import (
	"fmt"
	"math/rand"
)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalSource draws from the process-wide math/rand source, which is safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Sampler draws outcomes from distributions by inverting the cumulative distribution.
type Sampler struct {
	src RandomSource
}

// NewSampler returns a Sampler backed by src. A nil src uses the process-wide source.
func NewSampler(src RandomSource) *Sampler {
	if src == nil {
		src = globalSource{}
	}
	return &Sampler{src: src}
}

// NewSeededSampler returns a Sampler with its own deterministic source.
// The returned Sampler must not be shared between goroutines.
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)))
}

// Sample draws a single outcome from d.
func (s *Sampler) Sample(d Distribution) (Outcome, error) {
	i, err := s.SampleIndex(d)
	if err != nil {
		return Outcome{}, err
	}
	return d.outcomes[i], nil
}

// SampleIndex draws a single outcome from d and returns its index.
//
// A uniform r in [0, 1) selects the first outcome whose running cumulative probability
// exceeds r. When rounding leaves the final cumulative total at or below r, the last
// outcome is returned so every draw resolves.
func (s *Sampler) SampleIndex(d Distribution) (int, error) {
	if !d.Valid() {
		return 0, fmt.Errorf("%w: distribution was not validated", ErrInvalidDistribution)
	}

	r := s.src.Float64()
	var cumulative float64
	for i, o := range d.outcomes {
		cumulative += o.Probability
		if r < cumulative {
			return i, nil
		}
	}
	return len(d.outcomes) - 1, nil
}

// Sample draws from d using src, or the process-wide source when src is nil.
func Sample(d Distribution, src RandomSource) (Outcome, error) {
	return NewSampler(src).Sample(d)
}
