package models

// GoalTarget is a spot in the goal with its scoring odds
type GoalTarget struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Probability float64 `yaml:"probability"`
	Reward      int64   `yaml:"reward"`
	Penalty     int64   `yaml:"penalty"`
	GoldenBoot  bool    `yaml:"golden_boot,omitempty"` // scoring here earns the Golden Boot badge
}
