package analysis

import (
	"fmt"
	"math"

	"probplay/probability"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniformity buckets raw draws from src into equal-width bins over [0, 1)
type Uniformity struct {
	Trials     int
	Buckets    []int
	ChiSquared float64
	PValue     float64
}

// CheckUniformity draws trials values from src into buckets bins and runs a chi-squared
// test against the uniform distribution
func CheckUniformity(src probability.RandomSource, trials, buckets int) (*Uniformity, error) {
	if trials <= 0 || buckets < 2 {
		return nil, fmt.Errorf("%w: need positive trials and at least 2 buckets", probability.ErrInvalidInput)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no random source", probability.ErrInvalidInput)
	}

	u := &Uniformity{Trials: trials, Buckets: make([]int, buckets)}
	for i := 0; i < trials; i++ {
		b := int(src.Float64() * float64(buckets))
		if b >= buckets {
			b = buckets - 1
		}
		u.Buckets[b]++
	}

	expected := float64(trials) / float64(buckets)
	for _, n := range u.Buckets {
		u.ChiSquared += math.Pow(float64(n)-expected, 2) / expected
	}
	chi := distuv.ChiSquared{K: float64(buckets - 1)}
	u.PValue = 1 - chi.CDF(u.ChiSquared)
	return u, nil
}
