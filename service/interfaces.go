package service

import (
	"context"

	"probplay/events"
	"probplay/models"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// PlayerService defines the interface for player state operations
type PlayerService interface {
	// NewPlayer creates a player with the configured starting points
	NewPlayer(ctx context.Context, id string) (*models.Player, error)

	// Stats summarises a player's resolved rounds
	Stats(player *models.Player) *models.PlayerStats
}

// LuckyBoxService defines the interface for the Lucky Box Shop
type LuckyBoxService interface {
	// Boxes returns the boxes for sale
	Boxes() []models.LuckyBox

	// Analyze returns the expected value of every box, flagging the best one
	Analyze() ([]models.ChoiceAnalysis, error)

	// OpenBox buys a box and draws its prize
	OpenBox(ctx context.Context, player *models.Player, boxID int) (*models.LuckyBoxResult, error)
}

// InvestigationService defines the interface for Find the Thief
type InvestigationService interface {
	// Cases returns the available cases
	Cases() []models.GameCase

	// Start opens a new investigation of a case with every suspect equally likely
	Start(ctx context.Context, caseID string) (*CaseSession, error)

	// Restart resets a session to its uniform prior
	Restart(ctx context.Context, session *CaseSession) error

	// RevealNextClue applies the next clue to the session
	RevealNextClue(ctx context.Context, session *CaseSession) (*models.ClueReveal, error)

	// Accuse resolves the session against a suspect once every clue is revealed
	Accuse(ctx context.Context, player *models.Player, session *CaseSession, suspectID string) (*models.AccusationResult, error)
}

// BridgeService defines the interface for Survival Bridge
type BridgeService interface {
	// Options returns the payoff table per crossing size
	Options() []models.BridgeOption

	// Analyze returns the expected value of every crossing size, flagging the best one
	Analyze() ([]models.ChoiceAnalysis, error)

	// NewCrossing starts a crossing with every adventurer waiting
	NewCrossing() *Crossing

	// SendAcross sends count waiting adventurers across at once
	SendAcross(ctx context.Context, player *models.Player, crossing *Crossing, count int) (*models.CrossingResult, error)

	// Reset starts a fresh crossing once nobody is left waiting and reports whether it did
	Reset(crossing *Crossing) bool
}

// GoalService defines the interface for Goal or Miss
type GoalService interface {
	// Targets returns the spots in the goal
	Targets() []models.GoalTarget

	// Analyze returns the expected value of every target, flagging the best one
	Analyze() ([]models.ChoiceAnalysis, error)

	// Shoot takes a shot at a target
	Shoot(ctx context.Context, player *models.Player, targetID string) (*models.ShotResult, error)
}
