package memory

import (
	"context"
	"sync"

	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/storage"
)

// TradeEventStore is an in-memory implementation of storage.TradeEventStore.
type TradeEventStore struct {
	mu   sync.RWMutex
	data map[string][]domain.TradeEvent // keyed by source_name, ordered by timestamp
}

// NewTradeEventStore creates a new in-memory trade event store.
func NewTradeEventStore() *TradeEventStore {
	return &TradeEventStore{
		data: make(map[string][]domain.TradeEvent),
	}
}

// InsertBulk adds all events of one source atomically.
// Returns ErrDuplicateKey if the source name already has events.
func (s *TradeEventStore) InsertBulk(_ context.Context, sourceName string, events []domain.TradeEvent) error {
	if sourceName == "" {
		return storage.ErrInvalidInput
	}
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[sourceName]; exists {
		return storage.ErrDuplicateKey
	}

	evs := make([]domain.TradeEvent, len(events))
	copy(evs, events)
	s.data[sourceName] = evs
	return nil
}

// GetBySourceName retrieves all events of a source, ordered by timestamp ASC.
// Returns ErrNotFound if the source has no events.
func (s *TradeEventStore) GetBySourceName(_ context.Context, sourceName string) ([]domain.TradeEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	evs, exists := s.data[sourceName]
	if !exists {
		return nil, storage.ErrNotFound
	}

	out := make([]domain.TradeEvent, len(evs))
	copy(out, evs)
	return out, nil
}

var _ storage.TradeEventStore = (*TradeEventStore)(nil)
