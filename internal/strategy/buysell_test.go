package strategy

import (
	"context"
	"testing"
	"time"

	"updown-sim-lab/internal/domain"
)

func tradeEvent(price float64, ts time.Time) *domain.TradeEvent {
	return &domain.TradeEvent{
		Kind:       domain.EventKindTrade,
		SecurityID: "1",
		Price:      price,
		Volume:     domain.GeneratedVolume,
		Timestamp:  ts,
	}
}

func TestBuySell_AlternatesSides(t *testing.T) {
	s := NewBuySell("1", 100, 0)
	ctx := context.Background()
	ts := time.Date(2024, time.January, 3, 14, 30, 0, 0, time.UTC)

	wantSides := []domain.Side{domain.SideBuy, domain.SideSell, domain.SideBuy, domain.SideSell}
	for i, want := range wantSides {
		order, err := s.OnEvent(ctx, tradeEvent(45, ts))
		if err != nil {
			t.Fatalf("OnEvent %d failed: %v", i, err)
		}
		if order == nil {
			t.Fatalf("OnEvent %d returned no order", i)
		}
		if order.Side != want {
			t.Errorf("order %d side = %q, want %q", i, order.Side, want)
		}
		if order.Quantity != 100 {
			t.Errorf("order %d quantity = %v, want 100", i, order.Quantity)
		}
		if !order.PlacedAt.Equal(ts) {
			t.Errorf("order %d placed at %v, want %v", i, order.PlacedAt, ts)
		}
	}
}

func TestBuySell_OffsetShiftsQuantity(t *testing.T) {
	s := NewBuySell("1", 100, 25)

	order, err := s.OnEvent(context.Background(), tradeEvent(45, time.Now()))
	if err != nil {
		t.Fatalf("OnEvent failed: %v", err)
	}
	if order.Quantity != 125 {
		t.Errorf("quantity = %v, want 125", order.Quantity)
	}
}

func TestBuySell_NonPositiveQuantitySkips(t *testing.T) {
	s := NewBuySell("1", 100, -100)

	order, err := s.OnEvent(context.Background(), tradeEvent(45, time.Now()))
	if err != nil {
		t.Fatalf("OnEvent failed: %v", err)
	}
	if order != nil {
		t.Errorf("expected no order for zero quantity, got %+v", order)
	}
}

func TestStub_CollectsEvents(t *testing.T) {
	s := NewStub()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		order, err := s.OnEvent(ctx, tradeEvent(float64(40+i), time.Now()))
		if err != nil {
			t.Fatalf("OnEvent failed: %v", err)
		}
		if order != nil {
			t.Errorf("stub placed an order: %+v", order)
		}
	}

	if len(s.Events()) != 3 {
		t.Errorf("expected 3 collected events, got %d", len(s.Events()))
	}
}
