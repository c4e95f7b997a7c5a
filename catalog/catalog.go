// Package catalog holds the static game configuration: lucky boxes, cases, goal targets
// and the bridge payoff table. A default catalog is embedded; a YAML file can replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"probplay/models"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Catalog is the full static configuration for every game
type Catalog struct {
	LuckyBoxes  []models.LuckyBox   `yaml:"lucky_boxes"`
	Cases       []models.GameCase   `yaml:"cases"`
	GoalTargets []models.GoalTarget `yaml:"goal_targets"`
	Bridge      models.BridgeConfig `yaml:"bridge"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	c, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return c, nil
}

// Open loads the catalog at path, or the embedded one when path is empty
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes the catalog back to YAML
func (c *Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Box returns the lucky box with the given ID
func (c *Catalog) Box(id int) (models.LuckyBox, bool) {
	for _, b := range c.LuckyBoxes {
		if b.ID == id {
			return b, true
		}
	}
	return models.LuckyBox{}, false
}

// Case returns the case with the given ID
func (c *Catalog) Case(id string) (models.GameCase, bool) {
	for _, gc := range c.Cases {
		if gc.ID == id {
			return gc, true
		}
	}
	return models.GameCase{}, false
}

// Target returns the goal target with the given ID
func (c *Catalog) Target(id string) (models.GoalTarget, bool) {
	for _, t := range c.GoalTargets {
		if t.ID == id {
			return t, true
		}
	}
	return models.GoalTarget{}, false
}
