package analysis

import (
	"context"
	"fmt"

	"probplay/catalog"
	"probplay/probability"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Case names one distribution to simulate
type Case struct {
	Name         string
	Distribution probability.Distribution
}

// CatalogCases returns a case for every box, goal target and bridge option in c
func CatalogCases(c *catalog.Catalog) ([]Case, error) {
	var cases []Case
	for _, box := range c.LuckyBoxes {
		d, err := catalog.BoxDistribution(box)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for box %d: %w", box.ID, err)
		}
		cases = append(cases, Case{Name: "box: " + box.Name, Distribution: d})
	}
	for _, t := range c.GoalTargets {
		d, err := catalog.TargetDistribution(t)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for target %q: %w", t.ID, err)
		}
		cases = append(cases, Case{Name: "goal: " + t.Name, Distribution: d})
	}
	for _, o := range c.Bridge.Options {
		d, err := catalog.BridgeDistribution(o)
		if err != nil {
			return nil, fmt.Errorf("failed to build distribution for %d adventurers: %w", o.Count, err)
		}
		cases = append(cases, Case{Name: fmt.Sprintf("bridge: send %d", o.Count), Distribution: d})
	}
	return cases, nil
}

// SimulateAll runs every case concurrently. Each case gets its own sampler seeded from
// seed+index so results are reproducible; a zero seed uses the process-wide source.
// Reports come back in case order.
func SimulateAll(ctx context.Context, cases []Case, trials int, seed int64, concurrency int) ([]*Report, error) {
	reports := make([]*Report, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, tc := range cases {
		i, tc := i, tc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sampler := probability.NewSampler(nil)
			if seed != 0 {
				sampler = probability.NewSeededSampler(seed + int64(i))
			}
			report, err := Simulate(tc.Name, tc.Distribution, sampler, trials)
			if err != nil {
				return err
			}
			reports[i] = report

			log.WithFields(log.Fields{
				"case":   tc.Name,
				"trials": trials,
				"pass":   report.Pass(),
			}).Debug("Simulation complete")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to run simulations: %w", err)
	}
	return reports, nil
}
