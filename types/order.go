package types

import "strings"

// Side represents the trading side (buy or sell). The numeric values are
// the venue's wire encoding for the order schema.
type Side int

const (
	Buy  Side = 0
	Sell Side = 1
)

// String implements the fmt.Stringer interface for Side.
func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "UnknownSide"
	}
}

// Opposite returns the opposite trading side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// ParseSide converts a caller-supplied side string into a Side.
// Only "BUY" and "SELL" are accepted, case-insensitively.
func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(s) {
	case "BUY":
		return Buy, true
	case "SELL":
		return Sell, true
	default:
		return Buy, false
	}
}

// OrderType represents the kind of order. The numeric values are the
// venue's wire encoding.
type OrderType int

const (
	OrderTypeLimit  OrderType = 1
	OrderTypeMarket OrderType = 2
)

// String implements the fmt.Stringer interface for OrderType.
func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "Limit"
	case OrderTypeMarket:
		return "Market"
	default:
		return "UnknownOrderType"
	}
}

// ParseOrderType converts a caller-supplied order type string into an
// OrderType. Anything other than "limit" maps to a market order.
func ParseOrderType(s string) OrderType {
	if strings.ToLower(s) == "limit" {
		return OrderTypeLimit
	}
	return OrderTypeMarket
}

// OrderRequest carries the caller-supplied parameters for placing an order.
type OrderRequest struct {
	Symbol          string
	Side            string // "BUY" or "SELL", case-insensitive
	Quantity        uint32
	AccountID       uint64
	OrderType       string // "limit" or "market"; empty defaults to market
	LimitPrice      *float64
	StopLossTicks   *int32
	TakeProfitTicks *int32
	CustomTag       string
}

// OrderResponse is the structured outcome of an order operation.
type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	// HTTPStatus records the status code of the upstream attempt so the
	// retry loop can match on it instead of on error-message text.
	HTTPStatus int `json:"-"`

	// Raw preserves the upstream payload for diagnostics.
	Raw map[string]interface{} `json:"raw_response,omitempty"`
}
