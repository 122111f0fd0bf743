package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErpOrderItem is one order line forwarded to the order-entry system.
type ErpOrderItem struct {
	Code        string
	Description string
	Quantity    int
}

// ErpOrder is the payload submitted to the mock ERP order intake.
//
// ConfigurationID must match the configurator id format (CFG- + 12 hex).
// ExpectedExtendedPrice, when set, lets the intake cross-check TotalPrice
// against the pricing engine's output within a 0.01 tolerance.
type ErpOrder struct {
	OrderID               string
	ConfigurationID       string
	Items                 []ErpOrderItem
	RequestedShipDate     time.Time
	RoutingFlags          []string
	TotalPrice            decimal.Decimal
	ExpectedExtendedPrice *decimal.Decimal
}

// OrderConfirmation is what the configurator reports back after the ERP
// accepted a forwarded order.
type OrderConfirmation struct {
	ErpOrderID      string
	ConfigurationID string
	TotalPrice      decimal.Decimal
	Status          string
}
