package cmd

import (
	"context"
	"fmt"
	"math/rand"

	"probplay/catalog"
	"probplay/events"
	"probplay/probability"
	"probplay/service"
	"probplay/shell"

	log "github.com/sirupsen/logrus"
)

// app holds the wired services for one CLI invocation
type app struct {
	catalog  *catalog.Catalog
	bus      *events.Bus
	services shell.Services
}

// newApp loads the catalog and wires every service to a shared event bus and random source
func newApp(catalogPath string, seed int64) (*app, error) {
	c, err := catalog.Open(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var src probability.RandomSource
	if seed != 0 {
		src = rand.New(rand.NewSource(seed))
	}

	bus := events.NewBus()
	subscribeLogging(bus)

	return &app{
		catalog: c,
		bus:     bus,
		services: shell.Services{
			Players:        service.NewPlayerService(bus),
			LuckyBoxes:     service.NewLuckyBoxService(c, src, bus),
			Investigations: service.NewInvestigationService(c, bus),
			Bridge:         service.NewBridgeService(c, src, bus),
			Goals:          service.NewGoalService(c, src, bus),
		},
	}, nil
}

// subscribeLogging records game events in the log
func subscribeLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeRoundResolved, func(ctx context.Context, e events.Event) {
		ev := e.(events.RoundResolvedEvent)
		log.WithFields(log.Fields{
			"roundID":  ev.RoundID,
			"playerID": ev.PlayerID,
			"game":     ev.Game,
			"outcome":  ev.Outcome,
			"won":      ev.Won,
			"change":   ev.PointsChange,
		}).Info("Round resolved")
	})
	bus.Subscribe(events.EventTypeBadgeEarned, func(ctx context.Context, e events.Event) {
		ev := e.(events.BadgeEarnedEvent)
		log.WithFields(log.Fields{
			"playerID": ev.PlayerID,
			"game":     ev.Game,
			"badge":    ev.Badge,
		}).Info("Badge earned")
	})
	bus.Subscribe(events.EventTypeClueRevealed, func(ctx context.Context, e events.Event) {
		ev := e.(events.ClueRevealedEvent)
		log.WithFields(log.Fields{
			"sessionID":     ev.SessionID,
			"caseID":        ev.CaseID,
			"clueID":        ev.ClueID,
			"contradiction": ev.Contradiction,
			"live":          ev.Live,
		}).Debug("Clue revealed")
	})
}
