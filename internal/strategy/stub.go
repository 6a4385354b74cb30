package strategy

import (
	"context"

	"updown-sim-lab/internal/domain"
)

// Stub is a no-op strategy for testing.
// It collects events for verification without placing orders.
type Stub struct {
	events []domain.TradeEvent
}

// NewStub creates a new stub strategy.
func NewStub() *Stub {
	return &Stub{
		events: make([]domain.TradeEvent, 0),
	}
}

// OnEvent collects events for verification. Never places orders.
func (s *Stub) OnEvent(_ context.Context, event *domain.TradeEvent) (*domain.Order, error) {
	s.events = append(s.events, *event)
	return nil, nil
}

// Name returns the strategy identifier.
func (s *Stub) Name() string {
	return "stub"
}

// Events returns collected events for test verification.
func (s *Stub) Events() []domain.TradeEvent {
	return s.events
}

// Ensure Stub implements Strategy
var _ Strategy = (*Stub)(nil)
