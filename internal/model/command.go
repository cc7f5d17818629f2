package model

import "vegamm/internal/model/enum"

// OrderCancellation with an empty OrderID cancels every resting order the
// party holds on the market.
type OrderCancellation struct {
	OrderID  string `json:"orderId"`
	MarketID string `json:"marketId"`
}

// OrderSubmission is a single new order. Price is a venue-integer decimal
// string and must be empty for market orders.
type OrderSubmission struct {
	MarketID    string                `json:"marketId"`
	Price       string                `json:"price"`
	Size        uint64                `json:"size"`
	Side        enum.OrderSide        `json:"side"`
	TimeInForce enum.OrderTimeInForce `json:"timeInForce"`
	Type        enum.OrderType        `json:"type"`
	Reference   string                `json:"reference,omitempty"`
	ExpiresAt   int64                 `json:"expiresAt,omitempty"`
	PostOnly    bool                  `json:"postOnly,omitempty"`
	ReduceOnly  bool                  `json:"reduceOnly,omitempty"`
}

// BatchMarketInstructions bundles cancellations and at most one submission
// into a single signed command.
type BatchMarketInstructions struct {
	Cancellations []OrderCancellation `json:"cancellations"`
	Submissions   []OrderSubmission   `json:"submissions"`
}
