package models

// LuckyBoxResult represents the outcome of opening a box (returned to the player)
type LuckyBoxResult struct {
	Box           LuckyBox
	Prize         LuckyBoxItem
	ExpectedValue float64
	NetChange     int64
	NewPoints     int64
	BadgesEarned  []BadgeType
}

// ClueReveal represents a clue application and the resulting suspect odds
type ClueReveal struct {
	Clue          Clue
	Probabilities map[string]float64
	Eliminated    []string
	Contradiction bool // no remaining suspect matched; odds are unchanged
	Remaining     int
}

// AccusationResult represents the verdict of an accusation
type AccusationResult struct {
	Correct      bool
	Accused      Suspect
	Guilty       Suspect
	MostLikely   string
	PointsChange int64
	NewPoints    int64
	BadgesEarned []BadgeType
}

// CrossingResult represents the outcome of sending adventurers across
type CrossingResult struct {
	Success      bool
	Count        int
	PointsChange int64
	NewPoints    int64
	Adventurers  []AdventurerStatus
	BadgesEarned []BadgeType
}

// ShotResult represents the outcome of a shot at goal
type ShotResult struct {
	Target       GoalTarget
	Goal         bool
	PointsChange int64
	NewPoints    int64
	BadgesEarned []BadgeType
}

// ChoiceAnalysis is the expected-value breakdown of one choice
type ChoiceAnalysis struct {
	ID            string
	Name          string
	Cost          int64
	ExpectedValue float64
	NetExpected   float64 // expected value minus cost
	Best          bool
}
