package source

import (
	"errors"
	"time"

	"updown-sim-lab/internal/calendar"
	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/observability"
)

// Generator errors.
var (
	ErrNegativeAmplitude  = errors.New("amplitude must not be negative")
	ErrNegativeTradeCount = errors.New("trade count must not be negative")
)

// UpDownName derives the data source name for a security.
func UpDownName(securityID string) string {
	return "updown_" + securityID
}

// GenerateUpDown produces a perfectly predictable trade-event sequence:
// tradeCount+2 events whose prices alternate by +amplitude/-amplitude
// around basePrice, starting at basePrice-amplitude/2, each timestamped
// at the environment's next valid trading instant one day apart. The two
// extra events give downstream order-count derivations lead/lag room.
//
// The final trading instant is returned alongside the source so the
// caller can record it as the environment's period end; the generator
// itself does not mutate the environment.
func GenerateUpDown(securityID string, tradeCount int, env *calendar.Environment, basePrice, amplitude float64) (*DataSource, time.Time, error) {
	if amplitude < 0 {
		return nil, time.Time{}, ErrNegativeAmplitude
	}
	if tradeCount < 0 {
		return nil, time.Time{}, ErrNegativeTradeCount
	}

	price := basePrice - amplitude/2
	cur := env.FirstOpen
	sign := 1.0

	events := make([]domain.TradeEvent, 0, tradeCount+2)
	for i := 0; i < tradeCount+2; i++ {
		cur = env.NextTradingInstant(cur, calendar.OneTradingDay)

		events = append(events, domain.TradeEvent{
			Kind:       domain.EventKindTrade,
			SecurityID: securityID,
			Price:      price,
			Volume:     domain.GeneratedVolume,
			Timestamp:  cur,
		})

		price += sign * amplitude
		sign = -sign
	}

	observability.RecordSourceGenerated(len(events))

	return NewDataSource(UpDownName(securityID), events), cur, nil
}
