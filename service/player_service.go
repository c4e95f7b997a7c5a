package service

import (
	"context"
	"fmt"
	"time"

	"probplay/config"
	"probplay/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type playerService struct {
	publisher EventPublisher
}

// NewPlayerService creates a new player service
func NewPlayerService(publisher EventPublisher) PlayerService {
	return &playerService{
		publisher: publisher,
	}
}

func (s *playerService) NewPlayer(ctx context.Context, id string) (*models.Player, error) {
	if id == "" {
		id = uuid.NewString()
	}
	cfg := config.Get()

	player := &models.Player{
		ID:        id,
		CreatedAt: time.Now(),
	}

	round, err := beginRound(player, "", s.publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}
	defer round.Rollback() // No-op if already committed

	RecordPointsChange(round, models.TransactionTypeInitial, cfg.StartingPoints, nil)

	if err := round.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}

	log.WithFields(log.Fields{
		"playerID":       player.ID,
		"startingPoints": player.Points,
	}).Info("Created player")
	return player, nil
}

func (s *playerService) Stats(player *models.Player) *models.PlayerStats {
	stats := &models.PlayerStats{
		RoundsByGame: make(map[models.Game]int),
	}
	if player == nil {
		return stats
	}

	// Net change per round, in the order rounds were played
	var order []string
	net := make(map[string]int64)
	games := make(map[string]models.Game)
	for _, h := range player.History {
		if h.TransactionType == models.TransactionTypeInitial {
			continue
		}
		if h.TransactionType == models.TransactionTypeBoxPurchase {
			stats.TotalSpent += -h.ChangeAmount
		}
		if _, ok := net[h.RoundID]; !ok {
			order = append(order, h.RoundID)
			games[h.RoundID] = h.Game
		}
		net[h.RoundID] += h.ChangeAmount
	}

	for _, roundID := range order {
		change := net[roundID]
		stats.TotalRounds++
		stats.RoundsByGame[games[roundID]]++

		switch {
		case change > 0:
			stats.TotalWins++
			stats.TotalWon += change
			if change > stats.BiggestWin {
				stats.BiggestWin = change
			}
		case change < 0:
			stats.TotalLosses++
			stats.TotalLost += -change
			if -change > stats.BiggestLoss {
				stats.BiggestLoss = -change
			}
		}
	}
	return stats
}
