package service

import (
	"time"

	"probplay/events"
	"probplay/models"
)

// RecordPointsChange stages amount on the round with its history entry and a points change
// event. This is the single entry point for all points changes.
func RecordPointsChange(r *Round, transactionType models.TransactionType, amount int64, metadata map[string]any) {
	before := r.points
	r.points += amount

	r.history = append(r.history, models.PointsHistory{
		RoundID:             r.ID,
		Game:                r.Game,
		PointsBefore:        before,
		PointsAfter:         r.points,
		ChangeAmount:        amount,
		TransactionType:     transactionType,
		TransactionMetadata: metadata,
		CreatedAt:           time.Now(),
	})

	r.Publish(events.PointsChangeEvent{
		PlayerID:        r.PlayerID(),
		Game:            r.Game,
		OldPoints:       before,
		NewPoints:       r.points,
		TransactionType: transactionType,
		ChangeAmount:    amount,
	})

	// Also emit player created event if this is the starting balance
	if transactionType == models.TransactionTypeInitial {
		r.Publish(events.PlayerCreatedEvent{
			PlayerID:      r.PlayerID(),
			InitialPoints: r.points,
		})
	}
}

// AwardBadge grants a badge inside the round. Already held badges are ignored.
func AwardBadge(r *Round, badge models.BadgeType) bool {
	if r.HasBadge(badge) {
		return false
	}
	r.badges = append(r.badges, badge)
	r.Publish(events.BadgeEarnedEvent{
		PlayerID: r.PlayerID(),
		Game:     r.Game,
		Badge:    badge,
	})
	return true
}

// resolveRound stages the round summary event
func resolveRound(r *Round, outcome string, won bool, pointsChange int64) {
	r.Publish(events.RoundResolvedEvent{
		RoundID:      r.ID,
		PlayerID:     r.PlayerID(),
		Game:         r.Game,
		Outcome:      outcome,
		Won:          won,
		PointsChange: pointsChange,
	})
}
