package service

import (
	"context"
	"fmt"

	"probplay/catalog"
	"probplay/models"
	"probplay/probability"

	log "github.com/sirupsen/logrus"
)

type goalService struct {
	catalog   *catalog.Catalog
	sampler   *probability.Sampler
	publisher EventPublisher
}

// NewGoalService creates a new Goal or Miss service
func NewGoalService(c *catalog.Catalog, src probability.RandomSource, publisher EventPublisher) GoalService {
	return &goalService{
		catalog:   c,
		sampler:   probability.NewSampler(src),
		publisher: publisher,
	}
}

func (s *goalService) Targets() []models.GoalTarget {
	return s.catalog.GoalTargets
}

func (s *goalService) Analyze() ([]models.ChoiceAnalysis, error) {
	targets := s.catalog.GoalTargets
	choices := make([]models.ChoiceAnalysis, len(targets))
	ds := make([]probability.Distribution, len(targets))
	for i, t := range targets {
		d, err := catalog.TargetDistribution(t)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for target %q: %w", t.ID, err)
		}
		ds[i] = d
		choices[i] = models.ChoiceAnalysis{
			ID:   t.ID,
			Name: t.Name,
		}
	}
	return analyzeChoices(choices, ds)
}

func (s *goalService) Shoot(ctx context.Context, player *models.Player, targetID string) (*models.ShotResult, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	target, ok := s.catalog.Target(targetID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	}

	d, err := catalog.TargetDistribution(target)
	if err != nil {
		return nil, fmt.Errorf("failed to build shot distribution: %w", err)
	}

	round, err := beginRound(player, models.GameGoalOrMiss, s.publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}
	defer round.Rollback() // No-op if already committed

	outcome, err := s.sampler.Sample(d)
	if err != nil {
		return nil, fmt.Errorf("failed to draw shot outcome: %w", err)
	}
	goal := outcome.ID == catalog.OutcomeGoal

	change := target.Penalty
	txType := models.TransactionTypeShotMiss
	if goal {
		change = target.Reward
		txType = models.TransactionTypeShotGoal
	}

	RecordPointsChange(round, txType, change, map[string]any{
		"target_id":   target.ID,
		"probability": target.Probability,
	})
	if goal && target.GoldenBoot {
		AwardBadge(round, models.BadgeGoldenBoot)
	}
	resolveRound(round, outcome.ID, goal, change)

	if err := round.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}

	log.WithFields(log.Fields{
		"playerID": player.ID,
		"target":   target.ID,
		"goal":     goal,
	}).Debug("Resolved shot")

	return &models.ShotResult{
		Target:       target,
		Goal:         goal,
		PointsChange: change,
		NewPoints:    player.Points,
		BadgesEarned: round.Badges(),
	}, nil
}
