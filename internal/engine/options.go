package engine

import (
	"updown-sim-lab/internal/calendar"
	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/source"
	"updown-sim-lab/internal/strategy"
)

// Options is the fully merged input contract of a simulation run.
// Engine-specific passthrough keys travel in Extensions; the map is
// copied at construction and never shared with the caller.
type Options struct {
	SecurityID      string
	TradeCount      int // requested trade event count
	OrderCount      int // derived hint: trade_count - 1
	SimulationStyle domain.SimulationStyle
	Environment     *calendar.Environment
	Source          *source.DataSource
	Algorithm       strategy.Strategy
	Extensions      map[string]any
}

// copyExtensions returns an independent copy of the extension map.
func copyExtensions(ext map[string]any) map[string]any {
	if ext == nil {
		return nil
	}
	out := make(map[string]any, len(ext))
	for k, v := range ext {
		out[k] = v
	}
	return out
}
