package exchange

import (
	"context"

	"github.com/souravmenon1999/topstepx-engine/types"
)

// OrderExecutor defines the common interface for order execution against
// a trading venue.
//
// Hard failures (missing credential, missing contract id, transport
// errors, unparseable bodies) surface as returned errors. Business-level
// rejections surface as an OrderResponse with Success=false.
type OrderExecutor interface {
	// PlaceOrder validates the request, submits it, and interprets the
	// venue's response. Transient upstream failures are retried with
	// exponential backoff.
	PlaceOrder(ctx context.Context, req types.OrderRequest) (*types.OrderResponse, error)

	// ModifyOrder changes the price and/or quantity of a working order.
	// Not retried.
	ModifyOrder(ctx context.Context, orderID string, price *float64, quantity *uint32) (*types.OrderResponse, error)

	// CancelOrder cancels a working order. Not retried.
	CancelOrder(ctx context.Context, orderID string) (*types.OrderResponse, error)

	// Close releases pooled connections.
	Close() error
}
