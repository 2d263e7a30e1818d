package topstepx

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadContracts_BareArray(t *testing.T) {
	e, _, _ := newTestExecutor(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/Contract/available" {
			t.Errorf("unexpected path: %s", req.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["live"] != false {
			t.Errorf("live = %v, want false", body["live"])
		}
		return httpResponse(200, `[
			{"symbol":"mnq","id":101,"tickSize":"0.25"},
			{"name":"MES","contractId":"102","tickSize":0.25}
		]`), nil
	})
	e.SetToken("tok")

	contracts, err := e.LoadContracts(context.Background())
	if err != nil {
		t.Fatalf("LoadContracts failed: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("contracts = %d, want 2", len(contracts))
	}

	if id, ok := e.ContractID("MNQ"); !ok || id != 101 {
		t.Errorf("ContractID(MNQ) = %d, %v, want 101", id, ok)
	}
	if id, ok := e.ContractID("mes"); !ok || id != 102 {
		t.Errorf("ContractID(mes) = %d, %v, want 102", id, ok)
	}
	if !contracts[0].TickSize.Equal(decimal.RequireFromString("0.25")) {
		t.Errorf("TickSize = %v, want 0.25", contracts[0].TickSize)
	}
}

func TestLoadContracts_WrappedShapes(t *testing.T) {
	shapes := []string{
		`{"success":true,"contracts":[{"symbol":"MNQ","id":7}]}`,
		`{"success":true,"data":[{"symbol":"MNQ","id":7}]}`,
		`{"success":true,"result":[{"symbol":"MNQ","id":7}]}`,
		`{"success":true,"items":[{"symbol":"MNQ","id":7}]}`,
	}

	for _, shape := range shapes {
		body := shape
		e, _, _ := newTestExecutor(func(req *http.Request) (*http.Response, error) {
			return httpResponse(200, body), nil
		})
		e.SetToken("tok")

		contracts, err := e.LoadContracts(context.Background())
		if err != nil {
			t.Fatalf("LoadContracts(%s) failed: %v", shape, err)
		}
		if len(contracts) != 1 || contracts[0].ID != 7 {
			t.Errorf("LoadContracts(%s) = %v, want one contract with id 7", shape, contracts)
		}
	}
}

func TestLoadContracts_SkipsUnusableEntries(t *testing.T) {
	e, _, _ := newTestExecutor(func(req *http.Request) (*http.Response, error) {
		return httpResponse(200, `[
			{"symbol":"MNQ","id":1},
			{"symbol":"BAD"},
			{"id":2},
			{"symbol":"ALPHA","id":"CON.F.US.ENQ.U25"}
		]`), nil
	})
	e.SetToken("tok")

	contracts, err := e.LoadContracts(context.Background())
	if err != nil {
		t.Fatalf("LoadContracts failed: %v", err)
	}
	if len(contracts) != 1 || contracts[0].Symbol != "MNQ" {
		t.Errorf("contracts = %v, want only MNQ", contracts)
	}
}

func TestLoadContracts_APIError(t *testing.T) {
	e, _, _ := newTestExecutor(func(req *http.Request) (*http.Response, error) {
		return httpResponse(200, `{"success":false,"errorMessage":"not entitled","errorCode":"9"}`), nil
	})
	e.SetToken("tok")

	if _, err := e.LoadContracts(context.Background()); err == nil {
		t.Fatal("expected error for unsuccessful response")
	}
}

func TestLoadContracts_RequiresToken(t *testing.T) {
	e, mock, _ := newTestExecutor(func(req *http.Request) (*http.Response, error) {
		return httpResponse(200, `[]`), nil
	})

	if _, err := e.LoadContracts(context.Background()); err == nil {
		t.Fatal("expected error without token")
	}
	if mock.Calls != 0 {
		t.Errorf("network calls = %d, want 0", mock.Calls)
	}
}

func TestRoundToTick(t *testing.T) {
	quarter := decimal.RequireFromString("0.25")
	tests := []struct {
		price float64
		tick  decimal.Decimal
		want  float64
	}{
		{17890.30, quarter, 17890.25},
		{17890.40, quarter, 17890.50},
		{100.0, quarter, 100.0},
		{99.999, decimal.RequireFromString("0.5"), 100.0},
		{42.0, decimal.Zero, 42.0},
	}

	for _, tt := range tests {
		if got := RoundToTick(tt.price, tt.tick); got != tt.want {
			t.Errorf("RoundToTick(%v, %v) = %v, want %v", tt.price, tt.tick, got, tt.want)
		}
	}
}
