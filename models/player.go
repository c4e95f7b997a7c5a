package models

import (
	"slices"
	"time"
)

// Player is the explicit score and badge state owned by the caller and passed into
// every game resolution.
type Player struct {
	ID        string
	Points    int64
	Badges    []BadgeType
	History   []PointsHistory
	CreatedAt time.Time
}

// HasBadge reports whether the badge has been earned
func (p *Player) HasBadge(b BadgeType) bool {
	return slices.Contains(p.Badges, b)
}

// EarnBadge adds the badge if it is not already held and reports whether it was new.
// Badges are never removed.
func (p *Player) EarnBadge(b BadgeType) bool {
	if p.HasBadge(b) {
		return false
	}
	p.Badges = append(p.Badges, b)
	return true
}

// AddPoints applies a signed change. Points may go negative after a penalty.
func (p *Player) AddPoints(amount int64) {
	p.Points += amount
}
