package storage

import (
	"context"

	"updown-sim-lab/internal/domain"
)

// RunRecordStore provides access to run_records storage.
type RunRecordStore interface {
	// Insert adds a new run record. Returns ErrDuplicateKey if run_id exists.
	Insert(ctx context.Context, r *domain.RunRecord) error

	// GetByID retrieves a run record by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, runID string) (*domain.RunRecord, error)

	// GetBySecurityID retrieves all runs for a security, ordered by period_start ASC.
	GetBySecurityID(ctx context.Context, securityID string) ([]*domain.RunRecord, error)
}

// TradeEventStore provides access to trade_events storage.
// Sources are immutable: a source name is written once, as a whole.
type TradeEventStore interface {
	// InsertBulk adds all events of one source atomically.
	// Returns ErrDuplicateKey if the source name already has events.
	InsertBulk(ctx context.Context, sourceName string, events []domain.TradeEvent) error

	// GetBySourceName retrieves all events of a source, ordered by timestamp ASC.
	// Returns ErrNotFound if the source has no events.
	GetBySourceName(ctx context.Context, sourceName string) ([]domain.TradeEvent, error)
}
