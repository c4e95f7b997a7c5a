package service

import (
	"context"

	"probplay/events"
	"probplay/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Round is the unit of work for one game resolution. It stages the points, history entries,
// badges and events the round produces; Commit applies them to the player, Rollback drops them.
// Staging never copies the player's existing history.
type Round struct {
	ID      string
	Game    models.Game
	player  *models.Player
	points  int64
	history []models.PointsHistory
	badges  []models.BadgeType
	bus     *events.TransactionalBus
	closed  bool
}

// beginRound starts a round for player
func beginRound(player *models.Player, game models.Game, publisher EventPublisher) (*Round, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	return &Round{
		ID:     uuid.NewString(),
		Game:   game,
		player: player,
		points: player.Points,
		bus:    events.NewTransactionalBus(publisher),
	}, nil
}

// PlayerID returns the ID of the player the round is for
func (r *Round) PlayerID() string {
	return r.player.ID
}

// Points returns the player's points including the round's staged changes
func (r *Round) Points() int64 {
	return r.points
}

// HasBadge reports whether the player holds b or earned it in this round
func (r *Round) HasBadge(b models.BadgeType) bool {
	if r.player.HasBadge(b) {
		return true
	}
	for _, earned := range r.badges {
		if earned == b {
			return true
		}
	}
	return false
}

// Publish stages an event until commit
func (r *Round) Publish(event events.Event) {
	r.bus.Publish(event)
}

// Badges returns the badges first earned in this round
func (r *Round) Badges() []models.BadgeType {
	return r.badges
}

// Commit applies the staged changes to the player and emits the staged events
func (r *Round) Commit(ctx context.Context) error {
	if r.closed {
		return ErrRoundClosed
	}
	r.closed = true

	for _, h := range r.history {
		r.player.AddPoints(h.ChangeAmount)
		r.player.History = append(r.player.History, h)
	}
	for _, b := range r.badges {
		r.player.EarnBadge(b)
	}
	r.bus.Flush(ctx)

	log.WithFields(log.Fields{
		"roundID":  r.ID,
		"game":     r.Game,
		"playerID": r.player.ID,
		"points":   r.player.Points,
	}).Debug("Round committed")
	return nil
}

// Rollback discards the staged changes. It is a no-op after Commit.
func (r *Round) Rollback() {
	if r.closed {
		return
	}
	r.closed = true
	r.bus.Discard()
}
