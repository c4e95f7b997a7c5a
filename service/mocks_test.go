package service

import (
	"context"
	"testing"

	"probplay/catalog"
	"probplay/config"
	"probplay/events"
	"probplay/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// Published returns every event passed to Emit, in order
func (m *MockEventPublisher) Published() []events.Event {
	var out []events.Event
	for _, call := range m.Calls {
		if call.Method == "Emit" {
			out = append(out, call.Arguments.Get(1).(events.Event))
		}
	}
	return out
}

// PublishedTypes returns the type of every published event, in order
func (m *MockEventPublisher) PublishedTypes() []events.EventType {
	var out []events.EventType
	for _, e := range m.Published() {
		out = append(out, e.Type())
	}
	return out
}

func newMockPublisher() *MockEventPublisher {
	m := new(MockEventPublisher)
	m.On("Emit", mock.Anything, mock.Anything).Return()
	return m
}

// scriptedSource replays fixed draws, cycling when exhausted
type scriptedSource struct {
	values []float64
	next   int
}

func newScriptedSource(values ...float64) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// setupTest installs the test config and returns the default catalog
func setupTest(t *testing.T) *catalog.Catalog {
	t.Helper()
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

// newTestPlayer returns a player holding points with no history
func newTestPlayer(points int64) *models.Player {
	return &models.Player{ID: "player-1", Points: points}
}
