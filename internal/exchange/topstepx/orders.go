package topstepx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/souravmenon1999/topstepx-engine/internal/metrics"
	"github.com/souravmenon1999/topstepx-engine/types"
)

// PlaceOrder validates the request, assembles the venue payload, and
// submits it through the retry controller.
//
// An invalid side returns a soft-failure OrderResponse without touching
// the network. A missing credential or missing cached contract id is a
// hard failure: both are preconditions the caller must satisfy first, so
// no network call is attempted either.
func (e *Executor) PlaceOrder(ctx context.Context, req types.OrderRequest) (*types.OrderResponse, error) {
	side, ok := types.ParseSide(req.Side)
	if !ok {
		metrics.OrdersPlaced.WithLabelValues("rejected").Inc()
		return &types.OrderResponse{
			Success: false,
			Error:   "Side must be 'BUY' or 'SELL'",
		}, nil
	}

	token, ok := e.session.Token()
	if !ok {
		return nil, types.NewAuthRequiredError("authentication token required, call Authenticate or SetToken first")
	}

	contractID, ok := e.session.ContractID(req.Symbol)
	if !ok {
		return nil, types.NewContractNotFoundError(
			fmt.Sprintf("contract ID not found for symbol %s, call LoadContracts or SetContractID first", req.Symbol))
	}

	payload := buildPlaceRequest(req, side, contractID)

	e.logger.Debug().
		Str("symbol", req.Symbol).
		Str("side", side.String()).
		Uint32("size", req.Quantity).
		Int64("contract_id", contractID).
		Msg("placing order")

	resp, err := e.retryTransient(ctx, func() (*types.OrderResponse, error) {
		return e.doPlace(ctx, token, payload)
	})
	if err != nil {
		metrics.OrdersPlaced.WithLabelValues("failed").Inc()
		return nil, err
	}

	if resp.Success {
		metrics.OrdersPlaced.WithLabelValues("success").Inc()
		e.logger.Info().Str("order_id", resp.OrderID).Str("symbol", req.Symbol).Msg("order placed")
	} else {
		metrics.OrdersPlaced.WithLabelValues("rejected").Inc()
		e.logger.Warn().Str("error", resp.Error).Str("symbol", req.Symbol).Msg("order rejected")
	}
	return resp, nil
}

// doPlace performs a single place attempt and interprets the response.
func (e *Executor) doPlace(ctx context.Context, token string, payload *placeOrderRequest) (*types.OrderResponse, error) {
	status, body, err := e.post(ctx, placeOrderPath, payload, token, true)
	if err != nil {
		return nil, err
	}
	return interpretPlaceResponse(status, body)
}

// buildPlaceRequest maps caller parameters onto the venue's order schema.
// limitPrice and customTag appear only when supplied; either bracket may
// be attached independently.
func buildPlaceRequest(req types.OrderRequest, side types.Side, contractID int64) *placeOrderRequest {
	payload := &placeOrderRequest{
		AccountID:  req.AccountID,
		ContractID: contractID,
		Type:       int(types.ParseOrderType(req.OrderType)),
		Side:       int(side),
		Size:       req.Quantity,
		LimitPrice: req.LimitPrice,
		CustomTag:  req.CustomTag,
	}

	if req.StopLossTicks != nil {
		payload.StopLossBracket = &bracket{
			Ticks:      *req.StopLossTicks,
			Type:       4,
			Size:       req.Quantity,
			ReduceOnly: true,
		}
	}
	if req.TakeProfitTicks != nil {
		payload.TakeProfitBracket = &bracket{
			Ticks:      *req.TakeProfitTicks,
			Type:       1,
			Size:       req.Quantity,
			ReduceOnly: true,
		}
	}
	return payload
}

// ModifyOrder changes the price and/or quantity of a working order.
// Success is determined purely by the HTTP status class; the body is kept
// for diagnostics. Not retried.
func (e *Executor) ModifyOrder(ctx context.Context, orderID string, price *float64, quantity *uint32) (*types.OrderResponse, error) {
	token, ok := e.session.Token()
	if !ok {
		return nil, types.NewAuthRequiredError("authentication token required, call Authenticate or SetToken first")
	}

	payload := &modifyOrderRequest{OrderID: orderID, Price: price, Quantity: quantity}
	status, body, err := e.post(ctx, modifyOrderPath, payload, token, false)
	if err != nil {
		return nil, err
	}

	resp := interpretStatusResponse(status, body, orderID, "Order modified successfully")
	if resp.Success {
		e.logger.Info().Str("order_id", orderID).Msg("order modified")
	} else {
		e.logger.Warn().Str("order_id", orderID).Str("error", resp.Error).Msg("order modify failed")
	}
	return resp, nil
}

// CancelOrder cancels a working order. Same status-class semantics as
// ModifyOrder; not retried.
func (e *Executor) CancelOrder(ctx context.Context, orderID string) (*types.OrderResponse, error) {
	token, ok := e.session.Token()
	if !ok {
		return nil, types.NewAuthRequiredError("authentication token required, call Authenticate or SetToken first")
	}

	payload := &cancelOrderRequest{OrderID: orderID}
	status, body, err := e.post(ctx, cancelOrderPath, payload, token, false)
	if err != nil {
		return nil, err
	}

	resp := interpretStatusResponse(status, body, orderID, "Order cancelled successfully")
	if resp.Success {
		e.logger.Info().Str("order_id", orderID).Msg("order cancelled")
	} else {
		e.logger.Warn().Str("order_id", orderID).Str("error", resp.Error).Msg("order cancel failed")
	}
	return resp, nil
}

// GenerateCustomTag builds a unique order tag for tracking fills back to
// their origin. kind names the order flavour ("market", "bracket", ...);
// strategy is optional.
func GenerateCustomTag(kind, strategy string) string {
	base := "topstepx-engine-" + kind
	if strategy != "" {
		base += "-" + strategy
	}
	return fmt.Sprintf("%s-%s-%s", base, time.Now().Format("20060102150405"), uuid.NewString()[:8])
}
