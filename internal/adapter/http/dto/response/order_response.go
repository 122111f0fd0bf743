package response

import "coiltech/internal/domain/entities"

// ErpOrderResponse is the mock ERP's acceptance body.
type ErpOrderResponse struct {
	Status     string `json:"status"`
	ErpOrderID string `json:"erpOrderId"`
}

// OrderConfirmationResponse is returned by the configurator's order
// forwarding endpoint once the ERP accepted the order.
type OrderConfirmationResponse struct {
	Status          string  `json:"status"`
	ErpOrderID      string  `json:"erpOrderId"`
	ConfigurationID string  `json:"configurationId"`
	TotalPrice      float64 `json:"totalPrice"`
}

func FromOrderConfirmation(c entities.OrderConfirmation) OrderConfirmationResponse {
	return OrderConfirmationResponse{
		Status:          c.Status,
		ErpOrderID:      c.ErpOrderID,
		ConfigurationID: c.ConfigurationID,
		TotalPrice:      c.TotalPrice.InexactFloat64(),
	}
}
