package models

import (
	"time"
)

// TransactionType represents the type of points change
type TransactionType string

const (
	TransactionTypeInitial        TransactionType = "initial"
	TransactionTypeBoxPurchase    TransactionType = "box_purchase"
	TransactionTypeBoxPrize       TransactionType = "box_prize"
	TransactionTypeAccusationWin  TransactionType = "accusation_win"
	TransactionTypeAccusationLoss TransactionType = "accusation_loss"
	TransactionTypeCrossingWin    TransactionType = "crossing_win"
	TransactionTypeCrossingLoss   TransactionType = "crossing_loss"
	TransactionTypeShotGoal       TransactionType = "shot_goal"
	TransactionTypeShotMiss       TransactionType = "shot_miss"
)

// PointsHistory represents a historical points change
type PointsHistory struct {
	RoundID             string
	Game                Game
	PointsBefore        int64
	PointsAfter         int64
	ChangeAmount        int64
	TransactionType     TransactionType
	TransactionMetadata map[string]any
	CreatedAt           time.Time
}
