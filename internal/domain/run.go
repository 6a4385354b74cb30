package domain

import "time"

// RunRecord represents the persisted outcome of one composed simulation run.
// Corresponds to the run_records table.
type RunRecord struct {
	RunID           string // deterministic hash
	SecurityID      string
	StrategyName    string
	SimulationStyle SimulationStyle

	// Configuration
	TradeCount int // requested trade event count
	OrderCount int // derived hint: trade_count - 1

	// Outcome
	EventCount    int
	OrdersPlaced  int
	FillCount     int
	FinalPosition float64
	Cash          float64
	PnL           float64 // cash plus final position marked at the last price

	// Period
	PeriodStart time.Time
	PeriodEnd   time.Time
}
