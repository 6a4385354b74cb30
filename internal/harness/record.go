package harness

import (
	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/engine"
	"updown-sim-lab/internal/idhash"
)

// RunRecordFrom builds a persistable record from a completed run.
// The run id is deterministic: identical configurations yield the same id.
func RunRecordFrom(resolved *Resolved, results *engine.Results) *domain.RunRecord {
	events := resolved.Source.Events()
	periodStart := events[0].Timestamp

	return &domain.RunRecord{
		RunID:           idhash.ComputeRunID(resolved.SecurityID, results.StrategyName, periodStart.UnixMilli()),
		SecurityID:      resolved.SecurityID,
		StrategyName:    results.StrategyName,
		SimulationStyle: resolved.SimulationStyle,
		TradeCount:      resolved.TradeCount,
		OrderCount:      resolved.OrderCount,
		EventCount:      results.EventCount,
		OrdersPlaced:    results.OrdersPlaced,
		FillCount:       results.FillCount,
		FinalPosition:   results.FinalPosition,
		Cash:            results.Cash,
		PnL:             results.PnL,
		PeriodStart:     periodStart,
		PeriodEnd:       resolved.Environment.PeriodEnd,
	}
}
