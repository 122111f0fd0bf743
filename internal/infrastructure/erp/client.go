package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"coiltech/internal/domain/entities"
	"coiltech/internal/usecase/interfaces"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

var ErrMissingErpBaseURL = errors.New("missing ERP_BASE_URL")
var ErrErpGatewayNotConfigured = errors.New("erp gateway not configured")

// ErrOrderRejected marks a 4xx answer from the plant system: the order
// payload itself was refused, retrying the same payload will not help.
var ErrOrderRejected = errors.New("erp rejected the order")

const defaultTimeout = 10 * time.Second

// Client submits orders to the plant ERP intake over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IErpGateway = (*Client)(nil)

func NewClient(baseURL string) (*Client, error) {
	if isErpGatewayMockEnabled() {
		zlog.Info().Msg("erp gateway mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	if baseURL == "" {
		zlog.Error().Msg("missing ERP_BASE_URL")
		return nil, ErrMissingErpBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type wireOrderItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type wireOrder struct {
	OrderID               string          `json:"orderId"`
	ConfigurationID       string          `json:"configurationId"`
	Items                 []wireOrderItem `json:"items"`
	RequestedShipDate     time.Time       `json:"requestedShipDate"`
	RoutingFlags          []string        `json:"routingFlags"`
	TotalPrice            float64         `json:"totalPrice"`
	ExpectedExtendedPrice *float64        `json:"expectedExtendedPrice,omitempty"`
}

type wireConfirmation struct {
	Status     string `json:"status"`
	ErpOrderID string `json:"erpOrderId"`
}

type wireRejection struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// CreateOrder posts the order to the ERP intake endpoint and returns the
// ERP order id on acceptance.
func (c *Client) CreateOrder(ctx context.Context, order entities.ErpOrder) (string, error) {
	if c != nil && c.mockMode {
		id := mockErpOrderID()
		zlog.Info().Str("orderId", order.OrderID).Str("erpOrderId", id).Msg("erp gateway mock accept")
		return id, nil
	}

	if c == nil || c.httpClient == nil {
		return "", ErrErpGatewayNotConfigured
	}

	payload := wireOrder{
		OrderID:           order.OrderID,
		ConfigurationID:   order.ConfigurationID,
		Items:             make([]wireOrderItem, 0, len(order.Items)),
		RequestedShipDate: order.RequestedShipDate,
		RoutingFlags:      order.RoutingFlags,
		TotalPrice:        order.TotalPrice.InexactFloat64(),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, wireOrderItem{
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}
	if order.ExpectedExtendedPrice != nil {
		expected := order.ExpectedExtendedPrice.InexactFloat64()
		payload.ExpectedExtendedPrice = &expected
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/erp/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		zlog.Error().Err(err).Str("orderId", order.OrderID).Msg("erp gateway request failed")
		return "", err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusAccepted:
		var confirmation wireConfirmation
		if err := json.NewDecoder(res.Body).Decode(&confirmation); err != nil {
			return "", fmt.Errorf("decoding erp confirmation: %w", err)
		}
		zlog.Info().Str("orderId", order.OrderID).Str("erpOrderId", confirmation.ErpOrderID).Msg("erp order accepted")
		return confirmation.ErpOrderID, nil

	case res.StatusCode >= 400 && res.StatusCode < 500:
		var rejection wireRejection
		raw, _ := io.ReadAll(res.Body)
		if err := json.Unmarshal(raw, &rejection); err != nil || rejection.Error == "" {
			rejection.Error = strings.TrimSpace(string(raw))
		}
		zlog.Warn().Str("orderId", order.OrderID).Int("status", res.StatusCode).Strs("details", rejection.Details).Msg("erp order rejected")
		if len(rejection.Details) > 0 {
			return "", fmt.Errorf("%w: %s", ErrOrderRejected, strings.Join(rejection.Details, "; "))
		}
		return "", fmt.Errorf("%w: %s", ErrOrderRejected, rejection.Error)

	default:
		zlog.Error().Str("orderId", order.OrderID).Int("status", res.StatusCode).Msg("erp gateway unexpected status")
		return "", fmt.Errorf("erp gateway returned status %d", res.StatusCode)
	}
}

func mockErpOrderID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ERP-" + hex[:12]
}

func isErpGatewayMockEnabled() bool {
	for _, key := range []string{"ERP_GATEWAY_MOCK", "ERP_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
