package service

import (
	"context"
	"fmt"

	"probplay/catalog"
	"probplay/config"
	"probplay/models"
	"probplay/probability"

	log "github.com/sirupsen/logrus"
)

type luckyBoxService struct {
	catalog   *catalog.Catalog
	sampler   *probability.Sampler
	publisher EventPublisher
}

// NewLuckyBoxService creates a new Lucky Box Shop service
func NewLuckyBoxService(c *catalog.Catalog, src probability.RandomSource, publisher EventPublisher) LuckyBoxService {
	return &luckyBoxService{
		catalog:   c,
		sampler:   probability.NewSampler(src),
		publisher: publisher,
	}
}

func (s *luckyBoxService) Boxes() []models.LuckyBox {
	return s.catalog.LuckyBoxes
}

func (s *luckyBoxService) Analyze() ([]models.ChoiceAnalysis, error) {
	choices := make([]models.ChoiceAnalysis, len(s.catalog.LuckyBoxes))
	ds := make([]probability.Distribution, len(s.catalog.LuckyBoxes))
	for i, box := range s.catalog.LuckyBoxes {
		d, err := catalog.BoxDistribution(box)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for box %d: %w", box.ID, err)
		}
		ds[i] = d
		choices[i] = models.ChoiceAnalysis{
			ID:   fmt.Sprint(box.ID),
			Name: box.Name,
			Cost: box.Price,
		}
	}
	return analyzeChoices(choices, ds)
}

func (s *luckyBoxService) OpenBox(ctx context.Context, player *models.Player, boxID int) (*models.LuckyBoxResult, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	box, ok := s.catalog.Box(boxID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBox, boxID)
	}
	if player.Points < box.Price {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, player.Points, box.Price)
	}

	cfg := config.Get()

	analysis, err := s.Analyze()
	if err != nil {
		return nil, fmt.Errorf("failed to analyze boxes: %w", err)
	}
	var expected float64
	var smart bool
	for _, a := range analysis {
		if a.ID == fmt.Sprint(box.ID) {
			expected = a.ExpectedValue
			smart = a.Best
		}
	}

	d, err := catalog.BoxDistribution(box)
	if err != nil {
		return nil, fmt.Errorf("failed to build distribution for box %d: %w", box.ID, err)
	}

	round, err := beginRound(player, models.GameLuckyBox, s.publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}
	defer round.Rollback() // No-op if already committed

	idx, err := s.sampler.SampleIndex(d)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prize: %w", err)
	}
	prize := box.Items[idx]

	RecordPointsChange(round, models.TransactionTypeBoxPurchase, -box.Price, map[string]any{
		"box_id": box.ID,
	})
	RecordPointsChange(round, models.TransactionTypeBoxPrize, prize.Value, map[string]any{
		"box_id": box.ID,
		"item":   prize.Name,
		"rarity": prize.Rarity,
	})

	AwardBadge(round, models.BadgeFirstWin)
	if smart {
		AwardBadge(round, models.BadgeSmartInvestor)
	}
	if round.Points() > cfg.HighRollerThreshold {
		AwardBadge(round, models.BadgeHighRoller)
	}

	net := prize.Value - box.Price
	resolveRound(round, prize.Name, net > 0, net)

	if err := round.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}

	log.WithFields(log.Fields{
		"playerID": player.ID,
		"box":      box.Name,
		"prize":    prize.Name,
		"net":      net,
	}).Debug("Opened lucky box")

	return &models.LuckyBoxResult{
		Box:           box,
		Prize:         prize,
		ExpectedValue: expected,
		NetChange:     net,
		NewPoints:     player.Points,
		BadgesEarned:  round.Badges(),
	}, nil
}
