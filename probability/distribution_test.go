package probability

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistribution_Valid(t *testing.T) {
	d, err := NewDistribution([]Outcome{
		{ID: "common", Value: 10, Probability: 0.6},
		{ID: "rare", Value: 100, Probability: 0.4},
	})
	require.NoError(t, err)
	assert.True(t, d.Valid())
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "common", d.At(0).ID)
	assert.InDelta(t, 0.4, d.Probability("rare"), 1e-12)
	assert.Zero(t, d.Probability("missing"))
}

func TestNewDistribution_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
	}{
		{"sum above one", []Outcome{{ID: "a", Probability: 0.6}, {ID: "b", Probability: 0.6}}},
		{"sum below one", []Outcome{{ID: "a", Probability: 0.3}, {ID: "b", Probability: 0.3}}},
		{"negative", []Outcome{{ID: "a", Probability: 1.5}, {ID: "b", Probability: -0.5}}},
		{"nan", []Outcome{{ID: "a", Probability: math.NaN()}}},
		{"inf", []Outcome{{ID: "a", Probability: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDistribution(tt.outcomes)
			assert.ErrorIs(t, err, ErrInvalidDistribution)
			assert.False(t, d.Valid(), "no partial distribution should be returned")
		})
	}
}

func TestNewDistribution_SumOnePointTwoLeavesNoState(t *testing.T) {
	outcomes := []Outcome{
		{ID: "a", Value: 1, Probability: 0.7},
		{ID: "b", Value: 2, Probability: 0.5},
	}
	d, err := NewDistribution(outcomes)

	assert.True(t, errors.Is(err, ErrInvalidDistribution))
	assert.Zero(t, d.Len())
	assert.Equal(t, 0.7, outcomes[0].Probability, "input must not be altered")
}

func TestNewDistribution_EmptyIsInvalidInputAndDistribution(t *testing.T) {
	_, err := NewDistribution(nil)
	assert.ErrorIs(t, err, ErrInvalidDistribution)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewDistribution_WithinEpsilon(t *testing.T) {
	_, err := NewDistribution([]Outcome{
		{ID: "a", Probability: 0.1},
		{ID: "b", Probability: 0.2},
		{ID: "c", Probability: 0.7 + 5e-7},
	})
	assert.NoError(t, err)
}

func TestNewDistribution_CopiesInput(t *testing.T) {
	outcomes := []Outcome{{ID: "only", Probability: 1}}
	d, err := NewDistribution(outcomes)
	require.NoError(t, err)

	outcomes[0].ID = "changed"
	assert.Equal(t, "only", d.At(0).ID)

	got := d.Outcomes()
	got[0].ID = "changed again"
	assert.Equal(t, "only", d.At(0).ID)
}

func TestBinary(t *testing.T) {
	d, err := Binary("goal", "miss", 0.7, 115, -50)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "goal", d.At(0).ID)
	assert.InDelta(t, 0.3, d.At(1).Probability, 1e-12)
	assert.Equal(t, -50.0, d.At(1).Value)

	_, err = Binary("goal", "miss", 1.2, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDistribution)
	_, err = Binary("goal", "miss", math.NaN(), 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDistribution)
}
