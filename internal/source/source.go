// Package source provides trade-event data sources for the simulation
// engine, including the deterministic up/down generator.
package source

import "updown-sim-lab/internal/domain"

// DataSource is an immutable named ordered container of trade events
// for one security.
type DataSource struct {
	name   string
	events []domain.TradeEvent
}

// NewDataSource creates a data source from an ordered event sequence.
// The input slice is copied; the source never observes later mutation.
func NewDataSource(name string, events []domain.TradeEvent) *DataSource {
	evs := make([]domain.TradeEvent, len(events))
	copy(evs, events)
	return &DataSource{name: name, events: evs}
}

// Name returns the source identifier.
func (s *DataSource) Name() string {
	return s.name
}

// Len returns the number of events in the source.
func (s *DataSource) Len() int {
	return len(s.events)
}

// Events returns a copy of the ordered event sequence.
func (s *DataSource) Events() []domain.TradeEvent {
	evs := make([]domain.TradeEvent, len(s.events))
	copy(evs, s.events)
	return evs
}
