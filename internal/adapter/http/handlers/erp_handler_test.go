package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"coiltech/internal/domain/entities"
	"coiltech/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var erpOrderIDPattern = regexp.MustCompile(`^ERP-[0-9A-F]{12}$`)

func newErpRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewErpHandler()
	r := gin.New()
	r.POST("/erp/orders", h.CreateOrder)
	return r
}

func TestErpHandler_CreateOrder(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		w := postJSON(t, newErpRouter(), "/erp/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		body := `{
			"orderId": "ord-1001",
			"configurationId": "CFG-927d21934825",
			"items": [{"code": "FRAME-001", "description": "FanCoil Frame Assembly", "quantity": 10}],
			"requestedShipDate": "2026-09-15T00:00:00Z",
			"routingFlags": ["STANDARD BUILD"],
			"totalPrice": 18135.50,
			"expectedExtendedPrice": 18135.504
		}`
		w := postJSON(t, newErpRouter(), "/erp/orders", body)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		var res struct {
			Status     string `json:"status"`
			ErpOrderID string `json:"erpOrderId"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if res.Status != "accepted" {
			t.Fatalf("unexpected status: %q", res.Status)
		}
		if !erpOrderIDPattern.MatchString(res.ErpOrderID) {
			t.Fatalf("unexpected erp order id format: %q", res.ErpOrderID)
		}
	})

	t.Run("all violations collected", func(t *testing.T) {
		body := `{
			"orderId": "",
			"configurationId": "bogus",
			"items": [],
			"totalPrice": -1
		}`
		w := postJSON(t, newErpRouter(), "/erp/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Error != "Validation failed." {
			t.Fatalf("unexpected error: %q", res.Error)
		}
		if len(res.Details) != 5 {
			t.Fatalf("expected 5 details, got %v", res.Details)
		}
	})

	t.Run("price mismatch rejected", func(t *testing.T) {
		body := `{
			"orderId": "ord-1002",
			"configurationId": "CFG-927d21934825",
			"items": [{"code": "FRAME-001", "description": "Frame", "quantity": 1}],
			"requestedShipDate": "2026-09-15T00:00:00Z",
			"totalPrice": 100.00,
			"expectedExtendedPrice": 101.00
		}`
		w := postJSON(t, newErpRouter(), "/erp/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

// TestErpHandler_RoundTrip feeds the pricing engine's own output into the
// order intake: the id and extended price produced by one subsystem must be
// accepted verbatim by the other.
func TestErpHandler_RoundTrip(t *testing.T) {
	priced, err := pricing.Price(entities.ConfigurationRequest{
		ProductType: entities.ProductTypeFanCoil,
		WidthIn:     decimal.RequireFromString("24.0"),
		HeightIn:    decimal.RequireFromString("18.0"),
		DepthIn:     decimal.RequireFromString("12.0"),
		Material:    entities.MaterialCopper,
		Options:     []entities.ConfigOption{entities.OptionCoating, entities.OptionStainlessFasteners},
		Quantity:    10,
	})
	if err != nil {
		t.Fatalf("unexpected pricing error: %v", err)
	}

	items := ""
	for i, line := range priced.BOM {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{"code":%q,"description":%q,"quantity":%d}`, line.Code, line.Description, line.Qty)
	}
	body := fmt.Sprintf(`{
		"orderId": "ord-rt-1",
		"configurationId": %q,
		"items": [%s],
		"requestedShipDate": "2026-09-15T00:00:00Z",
		"totalPrice": %s,
		"expectedExtendedPrice": %s
	}`, priced.ConfigurationID, items, priced.ExtendedPrice.StringFixed(2), priced.ExtendedPrice.StringFixed(2))

	w := postJSON(t, newErpRouter(), "/erp/orders", body)
	if w.Code != http.StatusAccepted {
		t.Fatalf("round trip rejected: %d %s", w.Code, w.Body.String())
	}
}
