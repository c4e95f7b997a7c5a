package service

import (
	"context"
	"errors"
	"fmt"

	"probplay/catalog"
	"probplay/config"
	"probplay/events"
	"probplay/models"
	"probplay/probability"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CaseSession is one player's investigation of a case
type CaseSession struct {
	ID   string
	Case models.GameCase
	inv  *probability.Investigation
}

// State returns the investigation lifecycle state
func (s *CaseSession) State() probability.InvestigationState {
	return s.inv.State()
}

// Probabilities returns each suspect's current probability of guilt
func (s *CaseSession) Probabilities() map[string]float64 {
	probs := make(map[string]float64, len(s.Case.Suspects))
	if b := s.inv.Belief(); b != nil {
		for _, h := range b.Hypotheses() {
			probs[h.ID] = h.Weight
		}
	}
	return probs
}

// RevealedClues returns the clues shown so far in order
func (s *CaseSession) RevealedClues() []models.Clue {
	n := len(s.inv.Revealed())
	out := make([]models.Clue, n)
	copy(out, s.Case.Clues[:n])
	return out
}

// Remaining returns how many clues are still hidden
func (s *CaseSession) Remaining() int {
	return s.inv.Remaining()
}

// ReadyToAccuse reports whether every clue has been revealed
func (s *CaseSession) ReadyToAccuse() bool {
	return s.inv.ReadyToConclude()
}

// MostLikely returns the suspect currently carrying the most weight
func (s *CaseSession) MostLikely() string {
	if b := s.inv.Belief(); b != nil {
		return b.MostLikely().ID
	}
	return ""
}

type investigationService struct {
	catalog   *catalog.Catalog
	publisher EventPublisher
}

// NewInvestigationService creates a new Find the Thief service
func NewInvestigationService(c *catalog.Catalog, publisher EventPublisher) InvestigationService {
	return &investigationService{
		catalog:   c,
		publisher: publisher,
	}
}

func (s *investigationService) Cases() []models.GameCase {
	return s.catalog.Cases
}

func (s *investigationService) Start(ctx context.Context, caseID string) (*CaseSession, error) {
	gc, ok := s.catalog.Case(caseID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCase, caseID)
	}

	session := &CaseSession{
		ID:   uuid.NewString(),
		Case: gc,
	}
	if err := s.open(session); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"sessionID": session.ID,
		"caseID":    gc.ID,
		"suspects":  len(gc.Suspects),
	}).Debug("Started investigation")
	return session, nil
}

func (s *investigationService) Restart(ctx context.Context, session *CaseSession) error {
	if session == nil {
		return fmt.Errorf("%w: no session", ErrUnknownCase)
	}
	return s.open(session)
}

// open builds a fresh investigation at the uniform prior
func (s *investigationService) open(session *CaseSession) error {
	inv, err := probability.NewInvestigation(catalog.CaseHypotheses(session.Case), catalog.CaseEvidence(session.Case))
	if err != nil {
		return fmt.Errorf("failed to create investigation: %w", err)
	}
	if _, err := inv.Start(); err != nil {
		return fmt.Errorf("failed to start investigation: %w", err)
	}
	session.inv = inv
	return nil
}

func (s *investigationService) RevealNextClue(ctx context.Context, session *CaseSession) (*models.ClueReveal, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: no session", ErrUnknownCase)
	}

	index := len(session.inv.Revealed())
	_, applied, err := session.inv.RevealNext()
	if err != nil {
		if errors.Is(err, probability.ErrNoMoreEvidence) {
			return nil, ErrNoMoreClues
		}
		return nil, fmt.Errorf("failed to reveal clue: %w", err)
	}
	clue := session.Case.Clues[index]

	reveal := &models.ClueReveal{
		Clue:          clue,
		Probabilities: session.Probabilities(),
		Eliminated:    applied.Eliminated,
		Contradiction: applied.Contradiction,
		Remaining:     session.inv.Remaining(),
	}

	if applied.Contradiction {
		log.WithFields(log.Fields{
			"sessionID": session.ID,
			"clueID":    clue.ID,
		}).Warn("Clue matched no remaining suspect, odds unchanged")
	}

	if s.publisher != nil {
		s.publisher.Emit(ctx, events.ClueRevealedEvent{
			SessionID:     session.ID,
			CaseID:        session.Case.ID,
			ClueID:        clue.ID,
			Contradiction: applied.Contradiction,
			Live:          len(session.inv.Belief().Live()),
		})
	}
	return reveal, nil
}

func (s *investigationService) Accuse(ctx context.Context, player *models.Player, session *CaseSession, suspectID string) (*models.AccusationResult, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	if session == nil {
		return nil, fmt.Errorf("%w: no session", ErrUnknownCase)
	}
	accused, ok := session.Case.Suspect(suspectID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuspect, suspectID)
	}
	if session.inv.State() == probability.InvestigationConcluded {
		return nil, fmt.Errorf("%w: case already solved", ErrRoundClosed)
	}
	if !session.inv.ReadyToConclude() {
		return nil, fmt.Errorf("%w: %d clues left", ErrAccusationNotReady, session.inv.Remaining())
	}
	guilty, _ := session.Case.Suspect(session.Case.GuiltySuspectID)

	cfg := config.Get()

	round, err := beginRound(player, models.GameFindTheThief, s.publisher)
	if err != nil {
		return nil, fmt.Errorf("failed to begin round: %w", err)
	}
	defer round.Rollback() // No-op if already committed

	verdict, err := session.inv.Conclude(suspectID)
	if err != nil {
		return nil, fmt.Errorf("failed to conclude investigation: %w", err)
	}

	correct := suspectID == session.Case.GuiltySuspectID
	change := cfg.AccusationPenalty
	txType := models.TransactionTypeAccusationLoss
	if correct {
		change = cfg.AccusationReward
		txType = models.TransactionTypeAccusationWin
	}

	RecordPointsChange(round, txType, change, map[string]any{
		"case_id":     session.Case.ID,
		"accused":     suspectID,
		"most_likely": verdict.MostLikely.ID,
	})
	if correct {
		AwardBadge(round, models.BadgeMasterDetective)
	}
	resolveRound(round, suspectID, correct, change)

	if err := round.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit round: %w", err)
	}

	log.WithFields(log.Fields{
		"playerID":  player.ID,
		"sessionID": session.ID,
		"accused":   suspectID,
		"correct":   correct,
	}).Debug("Resolved accusation")

	return &models.AccusationResult{
		Correct:      correct,
		Accused:      accused,
		Guilty:       guilty,
		MostLikely:   verdict.MostLikely.ID,
		PointsChange: change,
		NewPoints:    player.Points,
		BadgesEarned: round.Badges(),
	}, nil
}
