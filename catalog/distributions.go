package catalog

import (
	"probplay/models"
	"probplay/probability"
)

// Outcome IDs for two-outcome games.
const (
	OutcomeGoal = "goal"
	OutcomeMiss = "miss"
	OutcomeSafe = "safe"
	OutcomeLost = "lost"
)

// BoxDistribution returns the prize distribution of a box with item values as outcome values.
// Outcome IDs are the item names in declared order.
func BoxDistribution(box models.LuckyBox) (probability.Distribution, error) {
	outcomes := make([]probability.Outcome, len(box.Items))
	for i, item := range box.Items {
		outcomes[i] = probability.Outcome{
			ID:          item.Name,
			Value:       float64(item.Value),
			Probability: item.Probability,
		}
	}
	return probability.NewDistribution(outcomes)
}

// TargetDistribution returns the goal/miss distribution of a shot at t
func TargetDistribution(t models.GoalTarget) (probability.Distribution, error) {
	return probability.Binary(OutcomeGoal, OutcomeMiss, t.Probability, float64(t.Reward), float64(t.Penalty))
}

// BridgeDistribution returns the safe/lost distribution of a crossing with option o
func BridgeDistribution(o models.BridgeOption) (probability.Distribution, error) {
	return probability.Binary(OutcomeSafe, OutcomeLost, o.Probability, float64(o.Reward), float64(o.Penalty))
}

// CaseHypotheses converts a case's suspects into hypotheses
func CaseHypotheses(gc models.GameCase) []probability.Hypothesis {
	hs := make([]probability.Hypothesis, len(gc.Suspects))
	for i, s := range gc.Suspects {
		hs[i] = probability.Hypothesis{ID: s.ID, Attributes: s.Attributes}
	}
	return hs
}

// CaseEvidence converts a case's clues into evidence in reveal order
func CaseEvidence(gc models.GameCase) []probability.Evidence {
	es := make([]probability.Evidence, len(gc.Clues))
	for i, c := range gc.Clues {
		es[i] = probability.Evidence{Attribute: c.Attribute, Expected: c.ExpectedValue}
	}
	return es
}
