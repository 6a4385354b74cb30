// Package engine executes simulation runs: it feeds data-source events
// to a strategy in order and fills the resulting orders on the next
// event under the configured execution-cost style.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/observability"
)

// Constructor errors.
var (
	ErrMissingSecurityID  = errors.New("engine: security id is required")
	ErrMissingSource      = errors.New("engine: trade source is required")
	ErrMissingAlgorithm   = errors.New("engine: algorithm is required")
	ErrMissingEnvironment = errors.New("engine: environment is required")
	ErrUnknownStyle       = errors.New("engine: unknown simulation style")
	ErrAlreadyStarted     = errors.New("engine: simulation already started")
)

// FixedSlippageSpread is the constant price penalty applied against each
// fill under StyleFixedSlippage: buys fill above the event price, sells
// below it.
const FixedSlippageSpread = 0.05

// Results holds the output of one simulation run.
type Results struct {
	SecurityID   string
	StrategyName string

	EventCount   int
	OrdersPlaced int
	FillCount    int
	Fills        []domain.Fill

	// Position and cash after the last event; PnL marks the final
	// position at the last observed price.
	FinalPosition float64
	Cash          float64
	LastPrice     float64
	PnL           float64
}

// Handle is a runnable simulation built from a fully merged option set.
type Handle struct {
	opts Options

	mu      sync.Mutex
	started bool
	err     error
	results *Results
	done    chan struct{}
}

// FromConfig builds a runnable simulation from a fully merged option set.
func FromConfig(opts Options) (*Handle, error) {
	if opts.SecurityID == "" {
		return nil, ErrMissingSecurityID
	}
	if opts.Source == nil {
		return nil, ErrMissingSource
	}
	if opts.Algorithm == nil {
		return nil, ErrMissingAlgorithm
	}
	if opts.Environment == nil {
		return nil, ErrMissingEnvironment
	}
	switch opts.SimulationStyle {
	case domain.StyleFixedSlippage, domain.StyleNoFriction:
	default:
		return nil, ErrUnknownStyle
	}

	opts.Extensions = copyExtensions(opts.Extensions)

	return &Handle{
		opts: opts,
		done: make(chan struct{}),
	}, nil
}

// Options returns the merged option set the handle was built from.
func (h *Handle) Options() Options {
	out := h.opts
	out.Extensions = copyExtensions(h.opts.Extensions)
	return out
}

// Simulate executes the run. When blocking is true it returns only after
// completion, with the run error. Otherwise the run proceeds in a
// goroutine and Wait reports the outcome. A handle runs at most once.
func (h *Handle) Simulate(ctx context.Context, blocking bool) error {
	h.mu.Lock()
	if h.started {
		h.mu.Unlock()
		return ErrAlreadyStarted
	}
	h.started = true
	h.mu.Unlock()

	if blocking {
		h.run(ctx)
		return h.Err()
	}

	go h.run(ctx)
	return nil
}

// Wait blocks until the run completes and returns its error, if any.
func (h *Handle) Wait() error {
	<-h.done
	return h.Err()
}

// Err returns the run error after completion.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Results returns the run output. Nil until the run has completed.
func (h *Handle) Results() *Results {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.results
}

func (h *Handle) run(ctx context.Context) {
	defer close(h.done)

	observability.RecordRunStarted()
	start := time.Now()

	res := &Results{
		SecurityID:   h.opts.SecurityID,
		StrategyName: h.opts.Algorithm.Name(),
		Fills:        make([]domain.Fill, 0),
	}

	// Orders placed on one event fill on the next (next-tick execution).
	var pending []domain.Order

	for _, ev := range h.opts.Source.Events() {
		if err := ctx.Err(); err != nil {
			h.finish(res, err, start)
			return
		}

		for _, order := range pending {
			h.fill(res, order, ev)
		}
		pending = pending[:0]

		res.EventCount++
		res.LastPrice = ev.Price
		observability.RecordEventConsumed()

		ev := ev
		order, err := h.opts.Algorithm.OnEvent(ctx, &ev)
		if err != nil {
			h.finish(res, err, start)
			return
		}
		if order != nil {
			res.OrdersPlaced++
			observability.RecordOrderPlaced(string(order.Side))
			pending = append(pending, *order)
		}
	}

	// Orders pending after the last event never fill.
	res.PnL = res.Cash + res.FinalPosition*res.LastPrice
	h.finish(res, nil, start)
}

// fill executes one order at the given event under the configured style.
func (h *Handle) fill(res *Results, order domain.Order, ev domain.TradeEvent) {
	price := ev.Price
	if h.opts.SimulationStyle == domain.StyleFixedSlippage {
		if order.Side == domain.SideBuy {
			price += FixedSlippageSpread
		} else {
			price -= FixedSlippageSpread
		}
	}

	if order.Side == domain.SideBuy {
		res.Cash -= order.Quantity * price
		res.FinalPosition += order.Quantity
	} else {
		res.Cash += order.Quantity * price
		res.FinalPosition -= order.Quantity
	}

	res.FillCount++
	observability.RecordFillExecuted()
	res.Fills = append(res.Fills, domain.Fill{
		SecurityID: order.SecurityID,
		Side:       order.Side,
		Quantity:   order.Quantity,
		Price:      price,
		PlacedAt:   order.PlacedAt,
		FilledAt:   ev.Timestamp,
	})
}

func (h *Handle) finish(res *Results, err error, start time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.RecordRunCompleted(status, time.Since(start).Seconds())

	h.mu.Lock()
	h.results = res
	h.err = err
	h.mu.Unlock()
}
