package erp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleOrder() entities.ErpOrder {
	expected := decimal.RequireFromString("18135.50")
	return entities.ErpOrder{
		OrderID:         "b2f1c3d4-0000-0000-0000-000000000000",
		ConfigurationID: "CFG-927d21934825",
		Items: []entities.ErpOrderItem{
			{Code: "FRAME-001", Description: "FanCoil Frame Assembly", Quantity: 10},
			{Code: "MAT-001", Description: "Copper Core Material", Quantity: 10},
		},
		RequestedShipDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		RoutingFlags:          []string{"STANDARD BUILD"},
		TotalPrice:            decimal.RequireFromString("18135.50"),
		ExpectedExtendedPrice: &expected,
	}
}

func TestNewClient(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		if _, err := NewClient(""); !errors.Is(err, ErrMissingErpBaseURL) {
			t.Fatalf("expected ErrMissingErpBaseURL, got %v", err)
		}
	})

	t.Run("mock mode skips base url", func(t *testing.T) {
		t.Setenv("ERP_GATEWAY_MOCK", "true")
		client, err := NewClient("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id, err := client.CreateOrder(context.Background(), sampleOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^ERP-[0-9A-F]{12}$`).MatchString(id) {
			t.Fatalf("unexpected mock erp order id: %q", id)
		}
	})
}

func TestClient_CreateOrder(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var received map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/erp/orders" || r.Method != http.MethodPost {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Fatalf("unexpected payload: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "accepted", "erpOrderId": "ERP-0123456789AB"})
		}))
		defer srv.Close()

		client, err := NewClient(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id, err := client.CreateOrder(context.Background(), sampleOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "ERP-0123456789AB" {
			t.Fatalf("unexpected erp order id: %q", id)
		}
		if received["configurationId"] != "CFG-927d21934825" {
			t.Fatalf("unexpected wire payload: %+v", received)
		}
		if received["totalPrice"] != 18135.50 {
			t.Fatalf("unexpected wire total price: %v", received["totalPrice"])
		}
	})

	t.Run("rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":   "Validation failed.",
				"details": []string{"OrderId is required."},
			})
		}))
		defer srv.Close()

		client, err := NewClient(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := client.CreateOrder(context.Background(), sampleOrder()); !errors.Is(err, ErrOrderRejected) {
			t.Fatalf("expected ErrOrderRejected, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := NewClient(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := client.CreateOrder(context.Background(), sampleOrder()); errors.Is(err, ErrOrderRejected) || err == nil {
			t.Fatalf("expected a transport-level error, got %v", err)
		}
	})
}
