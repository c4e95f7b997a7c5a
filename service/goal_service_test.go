package service

import (
	"context"
	"testing"

	"probplay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Analyze(t *testing.T) {
	c := setupTest(t)
	service := NewGoalService(c, nil, nil)

	analysis, err := service.Analyze()
	require.NoError(t, err)
	require.Len(t, analysis, 6)

	byID := make(map[string]models.ChoiceAnalysis)
	for _, a := range analysis {
		byID[a.ID] = a
	}
	assert.InDelta(t, 55.0, byID["top-left"].ExpectedValue, 1e-9)
	assert.InDelta(t, 65.5, byID["bottom-center"].ExpectedValue, 1e-9)
	assert.True(t, byID["bottom-center"].Best)
	assert.False(t, byID["top-left"].Best)
}

func TestGoalService_Shoot(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		draw       float64
		goal       bool
		change     int64
		goldenBoot bool
	}{
		{"corner goal", "top-left", 0.1, true, 300, true},
		{"corner miss", "top-right", 0.5, false, -50, false},
		{"center goal", "bottom-center", 0.69, true, 115, false},
		{"center miss", "bottom-center", 0.7, false, -50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTest(t)
			service := NewGoalService(c, newScriptedSource(tt.draw), nil)
			player := newTestPlayer(1000)

			result, err := service.Shoot(context.Background(), player, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.goal, result.Goal)
			assert.Equal(t, tt.change, result.PointsChange)
			assert.Equal(t, 1000+tt.change, player.Points)
			assert.Equal(t, tt.goldenBoot, player.HasBadge(models.BadgeGoldenBoot))
		})
	}
}

func TestGoalService_Shoot_Errors(t *testing.T) {
	c := setupTest(t)
	service := NewGoalService(c, nil, nil)

	_, err := service.Shoot(context.Background(), nil, "top-left")
	assert.ErrorIs(t, err, ErrNilPlayer)

	player := newTestPlayer(10)
	_, err = service.Shoot(context.Background(), player, "crossbar")
	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.Equal(t, int64(10), player.Points)
}

// TestGoalService_ScoringRate tests that each target scores at its declared rate
func TestGoalService_ScoringRate(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	service := NewGoalService(c, nil, nil)

	const trials = 10000
	for _, target := range c.GoalTargets {
		player := newTestPlayer(0)
		goals := 0
		for i := 0; i < trials; i++ {
			result, err := service.Shoot(ctx, player, target.ID)
			require.NoError(t, err)
			if result.Goal {
				goals++
			}
		}
		rate := float64(goals) / trials
		assert.InDelta(t, target.Probability, rate, 0.02, "target %s", target.ID) // 2% tolerance
	}
}
