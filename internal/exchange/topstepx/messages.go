package topstepx

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// placeOrderRequest is the body of POST /api/Order/place. Field names and
// encodings must be preserved bit-for-bit for venue compatibility.
type placeOrderRequest struct {
	AccountID  uint64   `json:"accountId"`
	ContractID int64    `json:"contractId"`
	Type       int      `json:"type"` // 1 = Limit, 2 = Market
	Side       int      `json:"side"` // 0 = Buy, 1 = Sell
	Size       uint32   `json:"size"`
	LimitPrice *float64 `json:"limitPrice,omitempty"`
	CustomTag  string   `json:"customTag,omitempty"`

	StopLossBracket   *bracket `json:"stopLossBracket,omitempty"`
	TakeProfitBracket *bracket `json:"takeProfitBracket,omitempty"`
}

// bracket is an attached conditional order submitted alongside the
// primary order. Type 4 = stop loss, type 1 = take profit.
type bracket struct {
	Ticks      int32  `json:"ticks"`
	Type       int    `json:"type"`
	Size       uint32 `json:"size"`
	ReduceOnly bool   `json:"reduceOnly"`
}

// modifyOrderRequest is the body of POST /api/Order/modify.
type modifyOrderRequest struct {
	OrderID  string   `json:"orderId"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *uint32  `json:"quantity,omitempty"`
}

// cancelOrderRequest is the body of POST /api/Order/cancel.
type cancelOrderRequest struct {
	OrderID string `json:"orderId"`
}

// loginKeyRequest is the body of POST /api/Auth/loginKey.
type loginKeyRequest struct {
	UserName string `json:"userName"`
	APIKey   string `json:"apiKey"`
}

// contractAvailableRequest is the body of POST /api/Contract/available.
type contractAvailableRequest struct {
	Live bool `json:"live"`
}
