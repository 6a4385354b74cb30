// Package strategy provides trading algorithms driven by trade events.
package strategy

import (
	"context"

	"updown-sim-lab/internal/domain"
)

// Strategy decides orders from trade events.
type Strategy interface {
	// OnEvent is called for each event in order.
	// Returns an order to place, or nil for no action.
	OnEvent(ctx context.Context, event *domain.TradeEvent) (*domain.Order, error)

	// Name returns the strategy identifier.
	Name() string
}
