package models

// BridgeOption is the payoff table for sending Count adventurers at once
type BridgeOption struct {
	Count       int     `yaml:"count"`
	Probability float64 `yaml:"probability"`
	Reward      int64   `yaml:"reward"`
	Penalty     int64   `yaml:"penalty"`
}

// BridgeConfig configures Survival Bridge
type BridgeConfig struct {
	TotalAdventurers int            `yaml:"total_adventurers"`
	Options          []BridgeOption `yaml:"options"`
}

// Option returns the payoff table for count adventurers
func (c BridgeConfig) Option(count int) (BridgeOption, bool) {
	for _, o := range c.Options {
		if o.Count == count {
			return o, true
		}
	}
	return BridgeOption{}, false
}

// AdventurerStatus is the state of one adventurer in a crossing
type AdventurerStatus string

const (
	AdventurerWaiting AdventurerStatus = "waiting"
	AdventurerSafe    AdventurerStatus = "safe"
	AdventurerLost    AdventurerStatus = "lost"
)
