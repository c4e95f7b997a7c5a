// Package analysis runs Monte Carlo checks of the sampler: many draws from a distribution,
// compared against the declared probabilities and expected value.
package analysis

import (
	"fmt"
	"math"

	"probplay/probability"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultTolerance is the allowed absolute gap between a declared and an observed frequency
const DefaultTolerance = 0.02

// Frequency compares one outcome's declared probability with how often it was drawn
type Frequency struct {
	ID        string
	Expected  float64
	Observed  float64
	Count     int
	Deviation float64 // Observed - Expected
}

// Report summarises a simulation of one distribution
type Report struct {
	Name        string
	Trials      int
	Frequencies []Frequency

	// Goodness of fit across all outcomes with positive probability
	ChiSquared       float64
	DegreesOfFreedom int
	PValue           float64

	// Payoff summary
	ExpectedValue float64
	Mean          float64
	StdDev        float64
	StdError      float64
	Median        float64
	Min           float64
	Max           float64
}

// Simulate draws trials outcomes from d and summarises them
func Simulate(name string, d probability.Distribution, sampler *probability.Sampler, trials int) (*Report, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", probability.ErrInvalidInput, trials)
	}
	if sampler == nil {
		sampler = probability.NewSampler(nil)
	}

	outcomes := d.Outcomes()
	counts := make([]int, len(outcomes))
	values := make([]float64, trials)
	for i := 0; i < trials; i++ {
		idx, err := sampler.SampleIndex(d)
		if err != nil {
			return nil, fmt.Errorf("failed to sample %s: %w", name, err)
		}
		counts[idx]++
		values[i] = outcomes[idx].Value
	}

	report := &Report{
		Name:          name,
		Trials:        trials,
		Frequencies:   make([]Frequency, len(outcomes)),
		ExpectedValue: probability.ExpectedValue(d),
	}

	cells := 0
	for i, o := range outcomes {
		observed := float64(counts[i]) / float64(trials)
		report.Frequencies[i] = Frequency{
			ID:        o.ID,
			Expected:  o.Probability,
			Observed:  observed,
			Count:     counts[i],
			Deviation: observed - o.Probability,
		}
		if o.Probability > 0 {
			expected := float64(trials) * o.Probability
			report.ChiSquared += math.Pow(float64(counts[i])-expected, 2) / expected
			cells++
		}
	}
	report.DegreesOfFreedom = cells - 1
	report.PValue = 1
	if report.DegreesOfFreedom > 0 {
		chi := distuv.ChiSquared{K: float64(report.DegreesOfFreedom)}
		report.PValue = 1 - chi.CDF(report.ChiSquared)
	}

	if err := report.summarise(values); err != nil {
		return nil, fmt.Errorf("failed to summarise %s: %w", name, err)
	}
	return report, nil
}

func (r *Report) summarise(values []float64) error {
	data := stats.Float64Data(values)
	var err error
	if r.Mean, err = stats.Mean(data); err != nil {
		return err
	}
	if r.StdDev, err = stats.StandardDeviation(data); err != nil {
		return err
	}
	if r.Median, err = stats.Median(data); err != nil {
		return err
	}
	if r.Min, err = stats.Min(data); err != nil {
		return err
	}
	if r.Max, err = stats.Max(data); err != nil {
		return err
	}
	r.StdError = r.StdDev / math.Sqrt(float64(len(values)))
	return nil
}

// FrequenciesWithin reports whether every observed frequency is within tolerance of its
// declared probability
func (r *Report) FrequenciesWithin(tolerance float64) bool {
	for _, f := range r.Frequencies {
		if math.Abs(f.Deviation) > tolerance {
			return false
		}
	}
	return true
}

// MeanWithin reports whether the observed mean is within sigmas standard errors of the
// expected value
func (r *Report) MeanWithin(sigmas float64) bool {
	gap := math.Abs(r.Mean - r.ExpectedValue)
	if r.StdError == 0 {
		return gap <= probability.Epsilon
	}
	return gap <= sigmas*r.StdError
}

// Pass reports whether the simulation agrees with the distribution at the default tolerance
// and within four standard errors on the mean
func (r *Report) Pass() bool {
	return r.FrequenciesWithin(DefaultTolerance) && r.MeanWithin(4)
}
