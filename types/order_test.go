package types

import (
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want Side
		ok   bool
	}{
		{"BUY", Buy, true},
		{"buy", Buy, true},
		{"Sell", Sell, true},
		{"SELL", Sell, true},
		{"HOLD", Buy, false},
		{"", Buy, false},
	}

	for _, tt := range tests {
		got, ok := ParseSide(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSide(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSideWireValues(t *testing.T) {
	if int(Buy) != 0 || int(Sell) != 1 {
		t.Errorf("wire encoding changed: Buy=%d Sell=%d", Buy, Sell)
	}
	if Buy.Opposite() != Sell || Sell.Opposite() != Buy {
		t.Error("Opposite() broken")
	}
}

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		in   string
		want OrderType
	}{
		{"limit", OrderTypeLimit},
		{"LIMIT", OrderTypeLimit},
		{"market", OrderTypeMarket},
		{"stop", OrderTypeMarket}, // anything unknown defaults to market
		{"", OrderTypeMarket},
	}

	for _, tt := range tests {
		if got := ParseOrderType(tt.in); got != tt.want {
			t.Errorf("ParseOrderType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if int(OrderTypeLimit) != 1 || int(OrderTypeMarket) != 2 {
		t.Error("order type wire encoding changed")
	}
}

func TestExecError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewTransportError("HTTP request failed", cause)

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}

	var execErr *ExecError
	if !errors.As(error(err), &execErr) || execErr.Kind != TransportError {
		t.Errorf("errors.As failed: %v", err)
	}

	msg := NewAuthRequiredError("token missing").Error()
	if msg != "Authentication required: token missing" {
		t.Errorf("Error() = %q", msg)
	}
}
