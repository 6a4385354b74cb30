// Package harness turns a sparse test specification into a fully
// parameterized simulation run over a perfectly predictable up/down
// trade source, so tests can assert exact outcomes.
package harness

import (
	"context"
	"errors"

	"updown-sim-lab/internal/calendar"
	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/engine"
	"updown-sim-lab/internal/source"
	"updown-sim-lab/internal/strategy"
)

// Defaults applied to unset RunSpec fields.
const (
	DefaultAmplitude  = 10.0
	DefaultBasePrice  = 50.0
	DefaultTradeCount = 3
	DefaultOrderSize  = 100.0
)

// ErrMissingSecurityID is returned when a RunSpec has no security id.
var ErrMissingSecurityID = errors.New("harness: security id is required")

// RunSpec is the sparse specification of a predictable simulation run.
// Only SecurityID is required; nil fields take the documented defaults.
type RunSpec struct {
	SecurityID string

	Amplitude  *float64 // price swing per step (default 10)
	BasePrice  *float64 // price the path oscillates around (default 50)
	TradeCount *int     // requested trade events (default 3)

	// Algorithm overrides the default BuySell strategy when set.
	Algorithm strategy.Strategy

	// Extensions are passed through to the engine options unchanged.
	Extensions map[string]any
}

// Resolved is the final merged configuration handed to the engine,
// returned so tests can assert what was actually used.
type Resolved struct {
	SecurityID      string
	Amplitude       float64
	BasePrice       float64
	TradeCount      int
	OrderCount      int
	SimulationStyle domain.SimulationStyle
	Environment     *calendar.Environment
	Source          *source.DataSource
	Algorithm       strategy.Strategy
	Extensions      map[string]any
}

// Compose fills in defaults, generates the up/down trade source on a
// fresh trading environment, constructs the default BuySell strategy if
// none was supplied (order size 100, quantity shifted by offset), and
// builds the simulation handle. The caller's spec is never mutated.
func Compose(spec RunSpec, offset float64) (*engine.Handle, *Resolved, error) {
	if spec.SecurityID == "" {
		return nil, nil, ErrMissingSecurityID
	}

	amplitude := DefaultAmplitude
	if spec.Amplitude != nil {
		amplitude = *spec.Amplitude
	}
	basePrice := DefaultBasePrice
	if spec.BasePrice != nil {
		basePrice = *spec.BasePrice
	}
	tradeCount := DefaultTradeCount
	if spec.TradeCount != nil {
		tradeCount = *spec.TradeCount
	}

	env := calendar.NewEnvironment()
	src, last, err := source.GenerateUpDown(spec.SecurityID, tradeCount, env, basePrice, amplitude)
	if err != nil {
		return nil, nil, err
	}
	env.PeriodEnd = last

	algo := spec.Algorithm
	if algo == nil {
		algo = strategy.NewBuySell(spec.SecurityID, DefaultOrderSize, offset)
	}

	ext := copyExtensions(spec.Extensions)

	resolved := &Resolved{
		SecurityID:      spec.SecurityID,
		Amplitude:       amplitude,
		BasePrice:       basePrice,
		TradeCount:      tradeCount,
		OrderCount:      tradeCount - 1,
		SimulationStyle: domain.StyleFixedSlippage,
		Environment:     env,
		Source:          src,
		Algorithm:       algo,
		Extensions:      ext,
	}

	handle, err := engine.FromConfig(engine.Options{
		SecurityID:      resolved.SecurityID,
		TradeCount:      resolved.TradeCount,
		OrderCount:      resolved.OrderCount,
		SimulationStyle: resolved.SimulationStyle,
		Environment:     resolved.Environment,
		Source:          resolved.Source,
		Algorithm:       resolved.Algorithm,
		Extensions:      resolved.Extensions,
	})
	if err != nil {
		return nil, nil, err
	}

	return handle, resolved, nil
}

// ComposeAndRun composes the run and executes it in blocking mode,
// waiting for the engine to complete before returning. The handle and
// resolved configuration are returned even when the run itself fails.
func ComposeAndRun(ctx context.Context, spec RunSpec, offset float64) (*engine.Handle, *Resolved, error) {
	handle, resolved, err := Compose(spec, offset)
	if err != nil {
		return nil, nil, err
	}

	if err := handle.Simulate(ctx, true); err != nil {
		return handle, resolved, err
	}

	return handle, resolved, nil
}

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
