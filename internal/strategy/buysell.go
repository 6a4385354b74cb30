package strategy

import (
	"context"

	"updown-sim-lab/internal/domain"
)

// BuySell alternately buys and sells a fixed quantity on every event.
// On a perfectly oscillating price path its round trips are fully
// predictable, which makes it the default algorithm for validation runs.
//
// The offset shifts the per-iteration order quantity away from orderSize;
// any deviation from zero changes the quantity traded each cycle and
// degrades the compound return achieved on the oscillating path.
type BuySell struct {
	securityID string
	orderSize  float64
	offset     float64

	sellNext bool
}

// NewBuySell creates a BuySell strategy ordering orderSize+offset per event.
func NewBuySell(securityID string, orderSize, offset float64) *BuySell {
	return &BuySell{
		securityID: securityID,
		orderSize:  orderSize,
		offset:     offset,
	}
}

// OnEvent places one order per event, alternating buy then sell.
func (s *BuySell) OnEvent(_ context.Context, event *domain.TradeEvent) (*domain.Order, error) {
	quantity := s.orderSize + s.offset
	if quantity <= 0 {
		return nil, nil
	}

	side := domain.SideBuy
	if s.sellNext {
		side = domain.SideSell
	}
	s.sellNext = !s.sellNext

	return &domain.Order{
		SecurityID: s.securityID,
		Side:       side,
		Quantity:   quantity,
		PlacedAt:   event.Timestamp,
	}, nil
}

// Name returns the strategy identifier.
func (s *BuySell) Name() string {
	return "buy_sell"
}

// Ensure BuySell implements Strategy
var _ Strategy = (*BuySell)(nil)
