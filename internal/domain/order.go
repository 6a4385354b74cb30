package domain

import "time"

// Side represents the direction of an order.
type Side string

// Side constants.
const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Order represents a request to trade a fixed quantity of a security.
type Order struct {
	SecurityID string
	Side       Side
	Quantity   float64
	PlacedAt   time.Time // timestamp of the event the order was placed on
}

// Fill represents an executed order.
type Fill struct {
	SecurityID string
	Side       Side
	Quantity   float64
	Price      float64 // execution price after the style's slippage model
	PlacedAt   time.Time
	FilledAt   time.Time
}
