package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedValue_CommonAndRare(t *testing.T) {
	d := mustDistribution(t,
		Outcome{ID: "common", Value: 10, Probability: 0.6},
		Outcome{ID: "rare", Value: 100, Probability: 0.4},
	)
	assert.InDelta(t, 46.0, ExpectedValue(d), 1e-9)
}

func TestBinaryExpectedValue(t *testing.T) {
	ev, err := BinaryExpectedValue(0.7, 115, -50)
	require.NoError(t, err)
	assert.InDelta(t, 65.5, ev, 1e-9)

	d, err := Binary("goal", "miss", 0.7, 115, -50)
	require.NoError(t, err)
	assert.InDelta(t, 65.5, ExpectedValue(d), 1e-9, "binary distribution and closed form must agree")

	_, err = BinaryExpectedValue(-0.1, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidDistribution)
}

func TestExpectedValue_ZeroDistribution(t *testing.T) {
	assert.Zero(t, ExpectedValue(Distribution{}))
}

func TestBestChoice(t *testing.T) {
	low := mustDistribution(t, Outcome{ID: "x", Value: 10, Probability: 1})
	high := mustDistribution(t,
		Outcome{ID: "win", Value: 200, Probability: 0.5},
		Outcome{ID: "lose", Value: 0, Probability: 0.5},
	)
	tie := mustDistribution(t, Outcome{ID: "y", Value: 100, Probability: 1})

	i, err := BestChoice([]Distribution{low, high, tie})
	require.NoError(t, err)
	assert.Equal(t, 1, i, "first of the tied maxima wins")

	id, err := BestChoiceID([]string{"low", "high", "tie"}, []Distribution{low, high, tie})
	require.NoError(t, err)
	assert.Equal(t, "high", id)
}

func TestBestChoice_NegativeValues(t *testing.T) {
	worse := mustDistribution(t, Outcome{ID: "a", Value: -20, Probability: 1})
	better := mustDistribution(t, Outcome{ID: "b", Value: -5, Probability: 1})

	i, err := BestChoice([]Distribution{worse, better})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestBestChoice_Errors(t *testing.T) {
	_, err := BestChoice(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BestChoice([]Distribution{{}})
	assert.ErrorIs(t, err, ErrInvalidDistribution)

	_, err = BestChoiceID([]string{"a"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
