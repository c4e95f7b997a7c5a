package models

// Suspect is a person under investigation in Find the Thief
type Suspect struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Avatar     string         `yaml:"avatar,omitempty"`
	Attributes map[string]any `yaml:"attributes"`
}

// Clue narrows the suspects down to those whose Attribute equals ExpectedValue
type Clue struct {
	ID            int    `yaml:"id"`
	Text          string `yaml:"text"`
	Attribute     string `yaml:"attribute"`
	ExpectedValue any    `yaml:"expected_value"`
}

// GameCase is a full Find the Thief scenario
type GameCase struct {
	ID              string    `yaml:"id"`
	Title           string    `yaml:"title"`
	Story           string    `yaml:"story"`
	Suspects        []Suspect `yaml:"suspects"`
	Clues           []Clue    `yaml:"clues"`
	GuiltySuspectID string    `yaml:"guilty_suspect_id"`
}

// Suspect returns the suspect with the given ID
func (c *GameCase) Suspect(id string) (Suspect, bool) {
	for _, s := range c.Suspects {
		if s.ID == id {
			return s, true
		}
	}
	return Suspect{}, false
}
