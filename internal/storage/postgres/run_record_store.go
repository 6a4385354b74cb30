package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/storage"
)

// RunRecordStore implements storage.RunRecordStore using PostgreSQL.
type RunRecordStore struct {
	pool *Pool
}

// NewRunRecordStore creates a new RunRecordStore.
func NewRunRecordStore(pool *Pool) *RunRecordStore {
	return &RunRecordStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RunRecordStore = (*RunRecordStore)(nil)

const runRecordColumns = `
	run_id, security_id, strategy_name, simulation_style,
	trade_count, order_count,
	event_count, orders_placed, fill_count,
	final_position, cash, pnl,
	period_start, period_end
`

// Insert adds a new run record. Returns ErrDuplicateKey if run_id exists.
func (s *RunRecordStore) Insert(ctx context.Context, r *domain.RunRecord) error {
	query := `
		INSERT INTO run_records (` + runRecordColumns + `) VALUES (
			$1, $2, $3, $4,
			$5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14
		)
	`

	_, err := s.pool.Exec(ctx, query,
		r.RunID, r.SecurityID, r.StrategyName, string(r.SimulationStyle),
		r.TradeCount, r.OrderCount,
		r.EventCount, r.OrdersPlaced, r.FillCount,
		r.FinalPosition, r.Cash, r.PnL,
		r.PeriodStart, r.PeriodEnd,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert run record: %w", err)
	}
	return nil
}

// GetByID retrieves a run record by its ID. Returns ErrNotFound if not exists.
func (s *RunRecordStore) GetByID(ctx context.Context, runID string) (*domain.RunRecord, error) {
	query := `SELECT ` + runRecordColumns + ` FROM run_records WHERE run_id = $1`

	row := s.pool.QueryRow(ctx, query, runID)
	r, err := scanRunRecord(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get run record by id: %w", err)
	}
	return r, nil
}

// GetBySecurityID retrieves all runs for a security, ordered by period_start ASC.
func (s *RunRecordStore) GetBySecurityID(ctx context.Context, securityID string) ([]*domain.RunRecord, error) {
	query := `
		SELECT ` + runRecordColumns + `
		FROM run_records
		WHERE security_id = $1
		ORDER BY period_start ASC
	`

	rows, err := s.pool.Query(ctx, query, securityID)
	if err != nil {
		return nil, fmt.Errorf("get run records by security id: %w", err)
	}
	defer rows.Close()

	var result []*domain.RunRecord
	for rows.Next() {
		r, err := scanRunRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run records: %w", err)
	}

	return result, nil
}

// scanRunRecord scans one row into a RunRecord.
func scanRunRecord(row pgx.Row) (*domain.RunRecord, error) {
	var (
		r     domain.RunRecord
		style string
	)

	err := row.Scan(
		&r.RunID, &r.SecurityID, &r.StrategyName, &style,
		&r.TradeCount, &r.OrderCount,
		&r.EventCount, &r.OrdersPlaced, &r.FillCount,
		&r.FinalPosition, &r.Cash, &r.PnL,
		&r.PeriodStart, &r.PeriodEnd,
	)
	if err != nil {
		return nil, err
	}

	r.SimulationStyle = domain.SimulationStyle(style)
	r.PeriodStart = r.PeriodStart.UTC()
	r.PeriodEnd = r.PeriodEnd.UTC()
	return &r, nil
}
