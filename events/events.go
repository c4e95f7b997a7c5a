package events

import (
	"context"
	"sync"

	"probplay/models"

	log "github.com/sirupsen/logrus"
)

// EventType names a kind of domain event
type EventType string

const (
	EventTypePointsChange  EventType = "points_change"
	EventTypePlayerCreated EventType = "player_created"
	EventTypeBadgeEarned   EventType = "badge_earned"
	EventTypeRoundResolved EventType = "round_resolved"
	EventTypeClueRevealed  EventType = "clue_revealed"
)

// Event is implemented by every domain event
type Event interface {
	Type() EventType
}

// PointsChangeEvent represents a points change that occurred
type PointsChangeEvent struct {
	PlayerID        string
	Game            models.Game
	OldPoints       int64
	NewPoints       int64
	TransactionType models.TransactionType
	ChangeAmount    int64
}

func (e PointsChangeEvent) Type() EventType {
	return EventTypePointsChange
}

// PlayerCreatedEvent represents a new player joining with starting points
type PlayerCreatedEvent struct {
	PlayerID      string
	InitialPoints int64
}

func (e PlayerCreatedEvent) Type() EventType {
	return EventTypePlayerCreated
}

// BadgeEarnedEvent is emitted the first time a player earns a badge
type BadgeEarnedEvent struct {
	PlayerID string
	Game     models.Game
	Badge    models.BadgeType
}

func (e BadgeEarnedEvent) Type() EventType {
	return EventTypeBadgeEarned
}

// RoundResolvedEvent represents a finished round of any game
type RoundResolvedEvent struct {
	RoundID      string
	PlayerID     string
	Game         models.Game
	Outcome      string
	Won          bool
	PointsChange int64
}

func (e RoundResolvedEvent) Type() EventType {
	return EventTypeRoundResolved
}

// ClueRevealedEvent represents a clue applied to an investigation
type ClueRevealedEvent struct {
	SessionID     string
	CaseID        string
	ClueID        int
	Contradiction bool
	Live          int
}

func (e ClueRevealedEvent) Type() EventType {
	return EventTypeClueRevealed
}

// Handler receives dispatched events. Handlers run on their own goroutine.
type Handler func(ctx context.Context, event Event)

// Bus fans events out to the handlers subscribed to their type
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers handler for eventType
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit hands event to every subscribed handler without waiting for them.
// A panicking handler is logged and does not affect the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		go b.dispatch(ctx, event, handler, i)
	}
}

func (b *Bus) dispatch(ctx context.Context, event Event, h Handler, index int) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": index,
				"panic":        r,
			}).Error("Event handler panicked")
		}
	}()
	h(ctx, event)
}

// Publisher delivers events. *Bus implements it.
type Publisher interface {
	Emit(ctx context.Context, event Event)
}

// TransactionalBus stages the events of one round. Nothing reaches the
// underlying publisher until Flush.
type TransactionalBus struct {
	real    Publisher
	pending []Event
}

// NewTransactionalBus stages events for real. A nil real drops them on Flush.
func NewTransactionalBus(real Publisher) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish stages e
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Pending returns the number of staged events
func (b *TransactionalBus) Pending() int {
	return len(b.pending)
}

// Flush emits the staged events in order with ctx and clears them
func (b *TransactionalBus) Flush(ctx context.Context) {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing staged round events")

	if b.real != nil {
		for _, ev := range b.pending {
			b.real.Emit(ctx, ev)
		}
	}
	b.pending = nil
}

// Discard drops the staged events
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
