package catalog

import (
	"errors"
	"fmt"

	"probplay/probability"
)

// ErrInvalidCatalog wraps every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks every distribution and cross reference in the catalog.
// All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	if len(c.LuckyBoxes) == 0 {
		add("no lucky boxes")
	}
	boxIDs := make(map[int]bool)
	for _, b := range c.LuckyBoxes {
		if boxIDs[b.ID] {
			add("duplicate lucky box id %d", b.ID)
		}
		boxIDs[b.ID] = true
		if b.Price < 0 {
			add("lucky box %d has negative price", b.ID)
		}
		if _, err := BoxDistribution(b); err != nil {
			add("lucky box %d: %w", b.ID, err)
		}
	}

	if len(c.Cases) == 0 {
		add("no cases")
	}
	caseIDs := make(map[string]bool)
	for _, gc := range c.Cases {
		if gc.ID == "" {
			add("case with empty id")
		}
		if caseIDs[gc.ID] {
			add("duplicate case id %q", gc.ID)
		}
		caseIDs[gc.ID] = true
		if _, err := probability.NewInvestigation(CaseHypotheses(gc), CaseEvidence(gc)); err != nil {
			add("case %q: %w", gc.ID, err)
		}
		if _, ok := gc.Suspect(gc.GuiltySuspectID); !ok {
			add("case %q: guilty suspect %q is not a suspect", gc.ID, gc.GuiltySuspectID)
		}
	}

	if len(c.GoalTargets) == 0 {
		add("no goal targets")
	}
	targetIDs := make(map[string]bool)
	for _, t := range c.GoalTargets {
		if t.ID == "" {
			add("goal target with empty id")
		}
		if targetIDs[t.ID] {
			add("duplicate goal target id %q", t.ID)
		}
		targetIDs[t.ID] = true
		if _, err := TargetDistribution(t); err != nil {
			add("goal target %q: %w", t.ID, err)
		}
	}

	if c.Bridge.TotalAdventurers < 1 {
		add("bridge needs at least one adventurer")
	}
	for count := 1; count <= c.Bridge.TotalAdventurers; count++ {
		if _, ok := c.Bridge.Option(count); !ok {
			add("bridge has no option for %d adventurers", count)
		}
	}
	for _, o := range c.Bridge.Options {
		if o.Count < 1 || o.Count > c.Bridge.TotalAdventurers {
			add("bridge option count %d outside 1..%d", o.Count, c.Bridge.TotalAdventurers)
		}
		if _, err := BridgeDistribution(o); err != nil {
			add("bridge option %d: %w", o.Count, err)
		}
	}

	return errors.Join(errs...)
}
