package service

import (
	"context"
	"testing"

	"probplay/events"
	"probplay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuckyBoxService_Analyze(t *testing.T) {
	c := setupTest(t)
	service := NewLuckyBoxService(c, nil, nil)

	analysis, err := service.Analyze()
	require.NoError(t, err)
	require.Len(t, analysis, 3)

	assert.InDelta(t, 103.0, analysis[0].ExpectedValue, 1e-9)
	assert.InDelta(t, 3.0, analysis[0].NetExpected, 1e-9)
	assert.InDelta(t, 315.0, analysis[1].ExpectedValue, 1e-9)
	assert.InDelta(t, 65.0, analysis[1].NetExpected, 1e-9)
	assert.InDelta(t, 510.0, analysis[2].ExpectedValue, 1e-9)

	// Best is by raw expected value, not net of price
	assert.False(t, analysis[0].Best)
	assert.False(t, analysis[1].Best)
	assert.True(t, analysis[2].Best)
}

func TestLuckyBoxService_OpenBox_CommonPrize(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	publisher := newMockPublisher()
	service := NewLuckyBoxService(c, newScriptedSource(0.0), publisher)
	player := newTestPlayer(1000)

	result, err := service.OpenBox(ctx, player, 1)
	require.NoError(t, err)

	assert.Equal(t, "Sticker", result.Prize.Name)
	assert.Equal(t, int64(-50), result.NetChange)
	assert.Equal(t, int64(950), result.NewPoints)
	assert.Equal(t, int64(950), player.Points)
	assert.InDelta(t, 103.0, result.ExpectedValue, 1e-9)
	assert.Equal(t, []models.BadgeType{models.BadgeFirstWin}, result.BadgesEarned)
	assert.True(t, player.HasBadge(models.BadgeFirstWin))

	require.Len(t, player.History, 2)
	assert.Equal(t, models.TransactionTypeBoxPurchase, player.History[0].TransactionType)
	assert.Equal(t, int64(-100), player.History[0].ChangeAmount)
	assert.Equal(t, models.TransactionTypeBoxPrize, player.History[1].TransactionType)
	assert.Equal(t, int64(900), player.History[1].PointsBefore)
	assert.Equal(t, int64(950), player.History[1].PointsAfter)

	assert.Equal(t, []events.EventType{
		events.EventTypePointsChange,
		events.EventTypePointsChange,
		events.EventTypeBadgeEarned,
		events.EventTypeRoundResolved,
	}, publisher.PublishedTypes())
	resolved := publisher.Published()[3].(events.RoundResolvedEvent)
	assert.False(t, resolved.Won)
	assert.Equal(t, int64(-50), resolved.PointsChange)
}

func TestLuckyBoxService_OpenBox_BestBoxBigWin(t *testing.T) {
	c := setupTest(t)
	service := NewLuckyBoxService(c, newScriptedSource(0.99), nil)
	player := newTestPlayer(1000)

	result, err := service.OpenBox(context.Background(), player, 3)
	require.NoError(t, err)

	assert.Equal(t, "Scooter", result.Prize.Name)
	assert.Equal(t, int64(3500), player.Points)
	assert.Equal(t, []models.BadgeType{
		models.BadgeFirstWin,
		models.BadgeSmartInvestor,
		models.BadgeHighRoller,
	}, result.BadgesEarned)
}

func TestLuckyBoxService_OpenBox_HighRollerIsStrict(t *testing.T) {
	c := setupTest(t)
	// Headphones: 300 from a 100 box lands exactly on the threshold
	service := NewLuckyBoxService(c, newScriptedSource(0.95), nil)
	player := newTestPlayer(1800)

	_, err := service.OpenBox(context.Background(), player, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), player.Points)
	assert.False(t, player.HasBadge(models.BadgeHighRoller))
}

func TestLuckyBoxService_OpenBox_BadgesOnlyOnce(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	service := NewLuckyBoxService(c, newScriptedSource(0.0), nil)
	player := newTestPlayer(1000)

	_, err := service.OpenBox(ctx, player, 3)
	require.NoError(t, err)
	second, err := service.OpenBox(ctx, player, 3)
	require.NoError(t, err)

	assert.Empty(t, second.BadgesEarned)
	assert.Equal(t, []models.BadgeType{models.BadgeFirstWin, models.BadgeSmartInvestor}, player.Badges)
}

func TestLuckyBoxService_OpenBox_Errors(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	publisher := newMockPublisher()
	service := NewLuckyBoxService(c, newScriptedSource(0.5), publisher)

	_, err := service.OpenBox(ctx, nil, 1)
	assert.ErrorIs(t, err, ErrNilPlayer)

	player := newTestPlayer(499)
	_, err = service.OpenBox(ctx, player, 3)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = service.OpenBox(ctx, player, 42)
	assert.ErrorIs(t, err, ErrUnknownBox)

	// Failed purchases leave the player untouched and publish nothing
	assert.Equal(t, int64(499), player.Points)
	assert.Empty(t, player.History)
	assert.Empty(t, player.Badges)
	assert.Empty(t, publisher.Published())
}

// TestLuckyBoxService_PrizeFrequencies checks that prizes come out at their declared odds
// over many purchases
func TestLuckyBoxService_PrizeFrequencies(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	service := NewLuckyBoxService(c, nil, nil)

	const trials = 20000
	box, _ := c.Box(2)
	player := newTestPlayer(int64(trials) * box.Price)

	counts := make(map[string]int)
	var total int64
	for i := 0; i < trials; i++ {
		result, err := service.OpenBox(ctx, player, box.ID)
		require.NoError(t, err)
		counts[result.Prize.Name]++
		total += result.Prize.Value
	}

	for _, item := range box.Items {
		actual := float64(counts[item.Name]) / trials
		assert.InDelta(t, item.Probability, actual, 0.02, "prize %s", item.Name)
	}
	assert.InDelta(t, 315.0, float64(total)/trials, 31.5)
}
