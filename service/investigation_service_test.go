package service

import (
	"context"
	"testing"

	"probplay/events"
	"probplay/models"
	"probplay/probability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealAll(t *testing.T, service InvestigationService, session *CaseSession) []*models.ClueReveal {
	t.Helper()
	var reveals []*models.ClueReveal
	for session.Remaining() > 0 {
		reveal, err := service.RevealNextClue(context.Background(), session)
		require.NoError(t, err)
		reveals = append(reveals, reveal)
	}
	return reveals
}

func TestInvestigationService_StartIsUniform(t *testing.T) {
	c := setupTest(t)
	service := NewInvestigationService(c, nil)

	session, err := service.Start(context.Background(), "missing-cake")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, probability.InvestigationInProgress, session.State())
	assert.Equal(t, 3, session.Remaining())

	probs := session.Probabilities()
	require.Len(t, probs, 5)
	for id, p := range probs {
		assert.InDelta(t, 0.2, p, 1e-12, id)
	}

	_, err = service.Start(context.Background(), "no-such-case")
	assert.ErrorIs(t, err, ErrUnknownCase)
}

func TestInvestigationService_RevealNarrowsSuspects(t *testing.T) {
	c := setupTest(t)
	publisher := newMockPublisher()
	service := NewInvestigationService(c, publisher)

	session, err := service.Start(context.Background(), "missing-cake")
	require.NoError(t, err)

	reveals := revealAll(t, service, session)
	require.Len(t, reveals, 3)

	// Kitchen access leaves chef, butler and maid
	first := reveals[0]
	assert.Equal(t, 1, first.Clue.ID)
	assert.False(t, first.Contradiction)
	assert.ElementsMatch(t, []string{"gardener", "guest"}, first.Eliminated)
	assert.InDelta(t, 1.0/3, first.Probabilities["maid"], 1e-12)
	assert.Zero(t, first.Probabilities["guest"])
	assert.Equal(t, 2, first.Remaining)

	// Glasses leave butler and maid
	assert.InDelta(t, 0.5, reveals[1].Probabilities["butler"], 1e-12)
	assert.InDelta(t, 0.5, reveals[1].Probabilities["maid"], 1e-12)

	last := reveals[2]
	assert.InDelta(t, 1.0, last.Probabilities["maid"], 1e-12)
	assert.Zero(t, last.Remaining)
	assert.True(t, session.ReadyToAccuse())
	assert.Equal(t, "maid", session.MostLikely())
	assert.Len(t, session.RevealedClues(), 3)

	_, err = service.RevealNextClue(context.Background(), session)
	assert.ErrorIs(t, err, ErrNoMoreClues)

	assert.Equal(t, []events.EventType{
		events.EventTypeClueRevealed,
		events.EventTypeClueRevealed,
		events.EventTypeClueRevealed,
	}, publisher.PublishedTypes())
	lastEvent := publisher.Published()[2].(events.ClueRevealedEvent)
	assert.Equal(t, 1, lastEvent.Live)
}

func TestInvestigationService_ContradictionKeepsOdds(t *testing.T) {
	c := setupTest(t)
	gc, _ := c.Case("missing-cake")
	// A clue nobody with kitchen access can match
	gc.Clues = []models.Clue{
		{ID: 1, Text: "kitchen", Attribute: "kitchen_access", ExpectedValue: true},
		{ID: 2, Text: "red hair", Attribute: "hair", ExpectedValue: "red"},
	}
	c.Cases = []models.GameCase{gc}
	service := NewInvestigationService(c, nil)

	session, err := service.Start(context.Background(), gc.ID)
	require.NoError(t, err)
	reveals := revealAll(t, service, session)

	assert.True(t, reveals[1].Contradiction)
	assert.Equal(t, reveals[0].Probabilities, reveals[1].Probabilities)
}

func TestInvestigationService_AccuseCorrect(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	publisher := newMockPublisher()
	service := NewInvestigationService(c, publisher)
	player := newTestPlayer(1000)

	session, err := service.Start(ctx, "missing-cake")
	require.NoError(t, err)
	revealAll(t, service, session)

	result, err := service.Accuse(ctx, player, session, "maid")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, "maid", result.Guilty.ID)
	assert.Equal(t, "maid", result.MostLikely)
	assert.Equal(t, int64(250), result.PointsChange)
	assert.Equal(t, int64(1250), player.Points)
	assert.Equal(t, []models.BadgeType{models.BadgeMasterDetective}, result.BadgesEarned)
	assert.Equal(t, probability.InvestigationConcluded, session.State())

	_, err = service.Accuse(ctx, player, session, "maid")
	assert.ErrorIs(t, err, ErrRoundClosed)
	assert.Equal(t, int64(1250), player.Points)
}

func TestInvestigationService_AccuseWrong(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	service := NewInvestigationService(c, nil)
	player := newTestPlayer(1000)

	session, err := service.Start(ctx, "stolen-painting")
	require.NoError(t, err)
	revealAll(t, service, session)

	result, err := service.Accuse(ctx, player, session, "guard")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, "curator", result.Guilty.ID)
	assert.Equal(t, int64(-50), result.PointsChange)
	assert.Equal(t, int64(950), player.Points)
	assert.Empty(t, result.BadgesEarned)
	assert.False(t, player.HasBadge(models.BadgeMasterDetective))
}

func TestInvestigationService_AccuseErrors(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	publisher := newMockPublisher()
	service := NewInvestigationService(c, publisher)
	player := newTestPlayer(1000)

	session, err := service.Start(ctx, "missing-cake")
	require.NoError(t, err)

	_, err = service.Accuse(ctx, player, session, "maid")
	assert.ErrorIs(t, err, ErrAccusationNotReady)

	revealAll(t, service, session)
	_, err = service.Accuse(ctx, player, session, "nobody")
	assert.ErrorIs(t, err, ErrUnknownSuspect)

	_, err = service.Accuse(ctx, nil, session, "maid")
	assert.ErrorIs(t, err, ErrNilPlayer)

	_, err = service.Accuse(ctx, player, nil, "maid")
	assert.ErrorIs(t, err, ErrUnknownCase)

	assert.Equal(t, int64(1000), player.Points)
	assert.Equal(t, probability.InvestigationInProgress, session.State())
	for _, e := range publisher.Published() {
		assert.Equal(t, events.EventTypeClueRevealed, e.Type())
	}
}

func TestInvestigationService_Restart(t *testing.T) {
	c := setupTest(t)
	ctx := context.Background()
	service := NewInvestigationService(c, nil)
	player := newTestPlayer(1000)

	session, err := service.Start(ctx, "missing-cake")
	require.NoError(t, err)
	revealAll(t, service, session)
	_, err = service.Accuse(ctx, player, session, "chef")
	require.NoError(t, err)

	require.NoError(t, service.Restart(ctx, session))
	assert.Equal(t, probability.InvestigationInProgress, session.State())
	assert.Equal(t, 3, session.Remaining())
	assert.Empty(t, session.RevealedClues())
	assert.InDelta(t, 0.2, session.Probabilities()["chef"], 1e-12)

	assert.ErrorIs(t, service.Restart(ctx, nil), ErrUnknownCase)
}
