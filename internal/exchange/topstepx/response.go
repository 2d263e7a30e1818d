package topstepx

import (
	"fmt"
	"strconv"

	"github.com/souravmenon1999/topstepx-engine/types"
)

// interpretPlaceResponse normalizes the venue's place-order response into
// a structured result. The upstream format is loosely typed: errors may
// arrive as a top-level "error" field, as a "success": false flag with
// errorMessage/message text, or as a non-JSON body on a non-2xx status.
//
// A reported success without an extractable order id is downgraded to a
// failure: success implies a non-empty order id.
func interpretPlaceResponse(status int, body []byte) (*types.OrderResponse, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		if status < 200 || status >= 300 {
			// Gateway-style failure with a non-JSON body. Soft, and the
			// recorded status lets the retry controller match on 500.
			return &types.OrderResponse{
				Success:    false,
				Error:      fmt.Sprintf("HTTP %d: %s", status, string(body)),
				HTTPStatus: status,
			}, nil
		}
		return nil, types.NewInvalidResponseError("failed to parse place response: " + err.Error())
	}

	if errVal, present := raw["error"]; present && errVal != nil {
		errMsg, ok := errVal.(string)
		if !ok {
			errMsg = fmt.Sprint(errVal)
		}
		return &types.OrderResponse{
			Success:    false,
			Error:      errMsg,
			HTTPStatus: status,
			Raw:        raw,
		}, nil
	}

	success, _ := raw["success"].(bool)
	if !success {
		errorCode := stringField(raw, "errorCode")
		if errorCode == "" {
			errorCode = "Unknown"
		}
		errorMessage := stringField(raw, "errorMessage")
		if errorMessage == "" {
			errorMessage = stringField(raw, "message")
		}
		if errorMessage == "" {
			errorMessage = "No error message"
		}
		return &types.OrderResponse{
			Success:    false,
			Error:      fmt.Sprintf("Order failed: %s (Code: %s)", errorMessage, errorCode),
			HTTPStatus: status,
			Raw:        raw,
		}, nil
	}

	orderID := extractOrderID(raw)
	if orderID == "" {
		return &types.OrderResponse{
			Success:    false,
			Error:      "Order rejected: No order ID returned",
			HTTPStatus: status,
			Raw:        raw,
		}, nil
	}

	return &types.OrderResponse{
		Success:    true,
		OrderID:    orderID,
		Message:    "Order placed successfully",
		HTTPStatus: status,
		Raw:        raw,
	}, nil
}

// extractOrderID checks, in order, orderId, id, then data.orderId. The
// venue returns ids as strings or numbers depending on the endpoint
// revision; both are accepted.
func extractOrderID(raw map[string]interface{}) string {
	if id := idString(raw["orderId"]); id != "" {
		return id
	}
	if id := idString(raw["id"]); id != "" {
		return id
	}
	if data, ok := raw["data"].(map[string]interface{}); ok {
		return idString(data["orderId"])
	}
	return ""
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}

// stringField reads a string-ish field, stringifying numbers.
func stringField(raw map[string]interface{}, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// interpretStatusResponse implements the modify/cancel semantics: success
// is the 2xx status class, independent of body content. On success the
// body is parsed as JSON when possible, else wrapped as a message; on
// failure the result carries "HTTP {status}: {body}".
func interpretStatusResponse(status int, body []byte, orderID, successMsg string) *types.OrderResponse {
	if status >= 200 && status < 300 {
		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			raw = map[string]interface{}{"message": string(body)}
		}
		return &types.OrderResponse{
			Success:    true,
			OrderID:    orderID,
			Message:    successMsg,
			HTTPStatus: status,
			Raw:        raw,
		}
	}

	return &types.OrderResponse{
		Success:    false,
		OrderID:    orderID,
		Error:      fmt.Sprintf("HTTP %d: %s", status, string(body)),
		HTTPStatus: status,
	}
}
