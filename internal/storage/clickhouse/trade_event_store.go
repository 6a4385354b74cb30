package clickhouse

import (
	"context"
	"fmt"
	"time"

	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/storage"
)

// TradeEventStore implements storage.TradeEventStore using ClickHouse.
// Sources are written once, as a whole; MergeTree does not enforce
// uniqueness, so the duplicate check is an explicit existence probe
// before the batch insert.
type TradeEventStore struct {
	conn *Conn
}

// NewTradeEventStore creates a new TradeEventStore.
func NewTradeEventStore(conn *Conn) *TradeEventStore {
	return &TradeEventStore{conn: conn}
}

// Compile-time interface check.
var _ storage.TradeEventStore = (*TradeEventStore)(nil)

// InsertBulk adds all events of one source atomically.
// Returns ErrDuplicateKey if the source name already has events.
func (s *TradeEventStore) InsertBulk(ctx context.Context, sourceName string, events []domain.TradeEvent) error {
	if sourceName == "" {
		return storage.ErrInvalidInput
	}
	if len(events) == 0 {
		return nil
	}

	exists, err := s.exists(ctx, sourceName)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return storage.ErrDuplicateKey
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO trade_events (
			source_name, security_id, kind, price, volume, timestamp
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, ev := range events {
		err = batch.Append(
			sourceName, ev.SecurityID, string(ev.Kind),
			ev.Price, ev.Volume, ev.Timestamp.UTC(),
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetBySourceName retrieves all events of a source, ordered by timestamp ASC.
// Returns ErrNotFound if the source has no events.
func (s *TradeEventStore) GetBySourceName(ctx context.Context, sourceName string) ([]domain.TradeEvent, error) {
	query := `
		SELECT security_id, kind, price, volume, timestamp
		FROM trade_events
		WHERE source_name = ?
		ORDER BY timestamp ASC
	`

	rows, err := s.conn.Query(ctx, query, sourceName)
	if err != nil {
		return nil, fmt.Errorf("get trade events by source name: %w", err)
	}
	defer rows.Close()

	var result []domain.TradeEvent
	for rows.Next() {
		var (
			ev   domain.TradeEvent
			kind string
			ts   time.Time
		)
		if err := rows.Scan(&ev.SecurityID, &kind, &ev.Price, &ev.Volume, &ts); err != nil {
			return nil, fmt.Errorf("scan trade event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		ev.Timestamp = ts.UTC()
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trade events: %w", err)
	}

	if len(result) == 0 {
		return nil, storage.ErrNotFound
	}
	return result, nil
}

// exists reports whether the source already has stored events.
func (s *TradeEventStore) exists(ctx context.Context, sourceName string) (bool, error) {
	query := `SELECT count() FROM trade_events WHERE source_name = ?`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, sourceName).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
