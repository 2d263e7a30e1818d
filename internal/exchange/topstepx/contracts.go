package topstepx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/souravmenon1999/topstepx-engine/types"
)

// Contract holds the venue metadata for one tradable instrument.
type Contract struct {
	ID       int64
	Symbol   string
	Name     string
	TickSize decimal.Decimal
}

// tickSizeKeys lists the field names the venue has used for the minimum
// price increment across endpoint revisions, in lookup order.
var tickSizeKeys = []string{"tickSize", "minTick", "priceIncrement", "minimumPriceIncrement", "tick"}

// LoadContracts fetches the available contracts via
// POST /api/Contract/available and upserts each symbol's contract id into
// the session cache. Entries already cached are refreshed in place.
func (e *Executor) LoadContracts(ctx context.Context) ([]Contract, error) {
	token, ok := e.session.Token()
	if !ok {
		return nil, types.NewAuthRequiredError("authentication token required, call Authenticate or SetToken first")
	}

	status, body, err := e.post(ctx, contractAvailablePath, &contractAvailableRequest{Live: false}, token, false)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &types.ExecError{
			Kind:       types.InvalidResponseError,
			Message:    fmt.Sprintf("contract fetch failed: HTTP %d: %s", status, string(body)),
			HTTPStatus: status,
		}
	}

	entries, err := contractEntries(body)
	if err != nil {
		return nil, err
	}

	contracts := make([]Contract, 0, len(entries))
	for _, entry := range entries {
		contract, ok := parseContract(entry)
		if !ok {
			e.logger.Warn().Interface("entry", entry).Msg("skipping contract with no usable symbol or id")
			continue
		}
		e.session.SetContractID(contract.Symbol, contract.ID)
		contracts = append(contracts, contract)
	}

	e.logger.Info().Int("count", len(contracts)).Msg("contract cache populated")
	return contracts, nil
}

// contractEntries digs the contract list out of the response. The venue
// has returned a bare array and several wrapper shapes over time.
func contractEntries(body []byte) ([]map[string]interface{}, error) {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, types.NewInvalidResponseError("failed to parse contracts response: " + err.Error())
	}

	var list []interface{}
	switch v := decoded.(type) {
	case []interface{}:
		list = v
	case map[string]interface{}:
		if errVal, present := v["error"]; present && errVal != nil {
			return nil, types.NewInvalidResponseError(fmt.Sprintf("contract fetch failed: %v", errVal))
		}
		if success, present := v["success"]; present {
			if ok, _ := success.(bool); !ok {
				code := stringField(v, "errorCode")
				if code == "" {
					code = "Unknown"
				}
				msg := stringField(v, "errorMessage")
				if msg == "" {
					msg = "No error message"
				}
				return nil, types.NewInvalidResponseError(fmt.Sprintf("contract fetch failed: %s (Code: %s)", msg, code))
			}
		}
		for _, key := range []string{"contracts", "data", "result", "items"} {
			if inner, ok := v[key].([]interface{}); ok {
				list = inner
				break
			}
		}
	default:
		return nil, types.NewInvalidResponseError("unexpected contracts response type")
	}

	entries := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if entry, ok := item.(map[string]interface{}); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// parseContract extracts symbol, numeric id, and tick size from one
// contract entry.
func parseContract(entry map[string]interface{}) (Contract, bool) {
	symbol := stringField(entry, "symbol")
	if symbol == "" {
		symbol = stringField(entry, "name")
	}
	if symbol == "" {
		return Contract{}, false
	}

	id, ok := contractID(entry)
	if !ok {
		return Contract{}, false
	}

	contract := Contract{
		ID:     id,
		Symbol: strings.ToUpper(symbol),
		Name:   stringField(entry, "name"),
	}

	for _, key := range tickSizeKeys {
		if tick, ok := decimalField(entry, key); ok && tick.IsPositive() {
			contract.TickSize = tick
			break
		}
	}
	return contract, true
}

func contractID(entry map[string]interface{}) (int64, bool) {
	for _, key := range []string{"id", "contractId"} {
		switch v := entry[key].(type) {
		case float64:
			return int64(v), true
		case string:
			if id, err := strconv.ParseInt(v, 10, 64); err == nil {
				return id, true
			}
		}
	}
	return 0, false
}

func decimalField(entry map[string]interface{}, key string) (decimal.Decimal, bool) {
	switch v := entry[key].(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// RoundToTick rounds a price to the nearest multiple of the tick size.
// A non-positive tick returns the price unchanged.
func RoundToTick(price float64, tick decimal.Decimal) float64 {
	if !tick.IsPositive() {
		return price
	}
	rounded, _ := decimal.NewFromFloat(price).Div(tick).Round(0).Mul(tick).Float64()
	return rounded
}
