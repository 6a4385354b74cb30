package domain

import "time"

// EventKind tags a market-data event.
type EventKind string

// EventKindTrade is the only kind the synthetic generator emits.
const EventKindTrade EventKind = "trade"

// GeneratedVolume is the fixed volume attached to every generated trade event.
const GeneratedVolume int64 = 1000

// TradeEvent represents one synthetic market tick.
type TradeEvent struct {
	Kind       EventKind
	SecurityID string
	Price      float64
	Volume     int64
	Timestamp  time.Time // calendar-valid trading instant, UTC
}
