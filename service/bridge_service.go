package service

import (
	"context"
	"fmt"

	"probplay/catalog"
	"probplay/models"
	"probplay/probability"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Crossing tracks every adventurer in one game of Survival Bridge
type Crossing struct {
	ID          string
	Adventurers []models.AdventurerStatus
}

// Waiting returns how many adventurers have not crossed yet
func (c *Crossing) Waiting() int {
	return c.Count(models.AdventurerWaiting)
}

// Count returns how many adventurers have the given status
func (c *Crossing) Count(status models.AdventurerStatus) int {
	n := 0
	for _, a := range c.Adventurers {
		if a == status {
			n++
		}
	}
	return n
}

type bridgeService struct {
	catalog   *catalog.Catalog
	sampler   *probability.Sampler
	publisher EventPublisher
}

// NewBridgeService creates a new Survival Bridge service
func NewBridgeService(c *catalog.Catalog, src probability.RandomSource, publisher EventPublisher) BridgeService {
	return &bridgeService{
		catalog:   c,
		sampler:   probability.NewSampler(src),
		publisher: publisher,
	}
}

func (s *bridgeService) Options() []models.BridgeOption {
	return s.catalog.Bridge.Options
}

func (s *bridgeService) Analyze() ([]models.ChoiceAnalysis, error) {
	options := s.catalog.Bridge.Options
	choices := make([]models.ChoiceAnalysis, len(options))
	ds := make([]probability.Distribution, len(options))
	for i, o := range options {
		d, err := catalog.BridgeDistribution(o)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for %d adventurers: %w", o.Count, err)
		}
		ds[i] = d
		choices[i] = models.ChoiceAnalysis{
			ID:   fmt.Sprint(o.Count),
			Name: fmt.Sprintf("Send %d", o.Count),
		}
	}
	return analyzeChoices(choices, ds)
}

func (s *bridgeService) NewCrossing() *Crossing {
	c := &Crossing{ID: uuid.NewString()}
	s.fill(c)
	return c
}

func (s *bridgeService) fill(c *Crossing) {
	c.Adventurers = make([]models.AdventurerStatus, s.catalog.Bridge.TotalAdventurers)
	for i := range c.Adventurers {
		c.Adventurers[i] = models.AdventurerWaiting
	}
}

func (s *bridgeService) SendAcross(ctx context.Context, player *models.Player, crossing *Crossing, count int) (*models.CrossingResult, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	if crossing == nil {
		return nil, fmt.Errorf("%w: no crossing", ErrInvalidCrossing)
	}
	waiting := crossing.Waiting()
	if count < 1 || count > waiting {
		return nil, fmt.Errorf("%w: cannot send %d with %d waiting", ErrInvalidCrossing, count, waiting)
	}
	option, ok := s.catalog.Bridge.Option(count)
	if !ok {
		return nil, fmt.Errorf("%w: no payoff for %d adventurers", ErrInvalidCrossing, count)
	}

	d, err := catalog.BridgeDistribution(option)
	if err != nil {
		return nil, fmt.Errorf("failed to build crossing distribution: %w", err)
	}

	round, err := beginRound(player, models.GameSurvivalBridge, s.publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}
	defer round.Rollback() // No-op if already committed

	outcome, err := s.sampler.Sample(d)
	if err != nil {
		return nil, fmt.Errorf("failed to draw crossing outcome: %w", err)
	}
	success := outcome.ID == catalog.OutcomeSafe

	change := option.Penalty
	txType := models.TransactionTypeCrossingLoss
	status := models.AdventurerLost
	if success {
		change = option.Reward
		txType = models.TransactionTypeCrossingWin
		status = models.AdventurerSafe
	}

	RecordPointsChange(round, txType, change, map[string]any{
		"crossing_id": crossing.ID,
		"count":       count,
		"probability": option.Probability,
	})
	if success && count == s.catalog.Bridge.TotalAdventurers {
		AwardBadge(round, models.BadgeBridgeMaster)
	}
	resolveRound(round, outcome.ID, success, change)

	if err := round.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}

	// Adventurers only move once the round is committed
	sent := 0
	for i, a := range crossing.Adventurers {
		if sent == count {
			break
		}
		if a == models.AdventurerWaiting {
			crossing.Adventurers[i] = status
			sent++
		}
	}

	log.WithFields(log.Fields{
		"playerID":   player.ID,
		"crossingID": crossing.ID,
		"count":      count,
		"success":    success,
	}).Debug("Resolved bridge crossing")

	adventurers := make([]models.AdventurerStatus, len(crossing.Adventurers))
	copy(adventurers, crossing.Adventurers)
	return &models.CrossingResult{
		Success:      success,
		Count:        count,
		PointsChange: change,
		NewPoints:    player.Points,
		Adventurers:  adventurers,
		BadgesEarned: round.Badges(),
	}, nil
}

func (s *bridgeService) Reset(crossing *Crossing) bool {
	if crossing == nil || crossing.Waiting() > 0 {
		return false
	}
	s.fill(crossing)
	return true
}
