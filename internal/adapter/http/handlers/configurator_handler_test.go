package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coiltech/internal/usecase"

	"github.com/gin-gonic/gin"
)

const fanCoilBody = `{
	"productType": "FanCoil",
	"widthIn": 24.0,
	"heightIn": 18.0,
	"depthIn": 12.0,
	"material": "Copper",
	"options": ["Coating", "StainlessFasteners"],
	"quantity": 10
}`

func newConfiguratorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewConfiguratorHandler(usecase.NewConfiguratorUseCase())
	r := gin.New()
	r.POST("/v1/configurator/price", h.PriceConfiguration)
	r.POST("/v1/configurator/validate", h.ValidateConfiguration)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfiguratorHandler_Price(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/price", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product type is a shape error", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/price",
			`{"productType":"Chiller","widthIn":24,"heightIn":18,"depthIn":12,"material":"Copper","options":["None"],"quantity":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, hasDetails := body["details"]; hasDetails {
			t.Fatalf("shape errors must not carry validation details: %s", w.Body.String())
		}
	})

	t.Run("validation errors are collected", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/price",
			`{"productType":"Coil","widthIn":1,"heightIn":18,"depthIn":12,"material":"Steel","options":["Chrome"],"quantity":2000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Error != "Validation failed." {
			t.Fatalf("unexpected error message: %q", body.Error)
		}
		if len(body.Details) != 3 {
			t.Fatalf("expected 3 details, got %v", body.Details)
		}
	})

	t.Run("success", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/price", fanCoilBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ConfigurationID string  `json:"configurationId"`
			ProductType     string  `json:"productType"`
			Material        string  `json:"material"`
			UnitPrice       float64 `json:"unitPrice"`
			ExtendedPrice   float64 `json:"extendedPrice"`
			BOM             []struct {
				Code string `json:"code"`
				Qty  int    `json:"qty"`
			} `json:"bom"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.ConfigurationID != "CFG-927d21934825" {
			t.Fatalf("unexpected configuration id: %s", body.ConfigurationID)
		}
		if body.UnitPrice != 1813.55 || body.ExtendedPrice != 18135.50 {
			t.Fatalf("unexpected prices: %+v", body)
		}
		if len(body.BOM) != 4 {
			t.Fatalf("unexpected bom: %+v", body.BOM)
		}
	})

	t.Run("case-insensitive enums emit canonical casing", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/price",
			`{"productType":"fancoil","widthIn":24,"heightIn":18,"depthIn":12,"material":"copper","options":["coating","stainlessfasteners"],"quantity":10}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ConfigurationID string `json:"configurationId"`
			ProductType     string `json:"productType"`
			Material        string `json:"material"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ProductType != "FanCoil" || body.Material != "Copper" {
			t.Fatalf("expected canonical enum casing, got %+v", body)
		}
		// Same normalized projection, same id as the canonical-case payload.
		if body.ConfigurationID != "CFG-927d21934825" {
			t.Fatalf("lowercase ingest changed the id: %s", body.ConfigurationID)
		}
	})
}

func TestConfiguratorHandler_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/validate", fanCoilBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Request is valid." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		w := postJSON(t, newConfiguratorRouter(), "/v1/configurator/validate",
			`{"productType":"Coil","widthIn":5,"heightIn":18,"depthIn":12,"material":"Steel","options":[],"quantity":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Details []string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Details) != 3 {
			t.Fatalf("expected 3 details, got %v", body.Details)
		}
	})
}
