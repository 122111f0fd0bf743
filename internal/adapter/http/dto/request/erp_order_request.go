package request

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// priceTolerance absorbs rounding differences between the configurator and
// the caller; anything beyond one cent is a real mismatch.
var priceTolerance = decimal.RequireFromString("0.01")

var configurationIDPattern = regexp.MustCompile(`(?i)^CFG-[a-f0-9]{12}$`)

// ErpOrderItemRequest is one order line in the intake payload.
type ErpOrderItemRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// ErpOrderRequest is the order intake payload accepted by the mock ERP.
//
// Decimal fields are parsed exactly so the price-consistency check is not
// subject to binary-float drift at the 0.01 boundary.
type ErpOrderRequest struct {
	OrderID               string                `json:"orderId"`
	ConfigurationID       string                `json:"configurationId"`
	Items                 []ErpOrderItemRequest `json:"items"`
	RequestedShipDate     time.Time             `json:"requestedShipDate"`
	RoutingFlags          []string              `json:"routingFlags"`
	TotalPrice            decimal.Decimal       `json:"totalPrice"`
	ExpectedExtendedPrice *decimal.Decimal      `json:"expectedExtendedPrice"`
}

// Validate collects every violated rule; nothing short-circuits.
func (r ErpOrderRequest) Validate() []string {
	var errs []string

	if strings.TrimSpace(r.OrderID) == "" {
		errs = append(errs, "OrderId is required.")
	}

	if !configurationIDPattern.MatchString(r.ConfigurationID) {
		errs = append(errs, "ConfigurationId must match format CFG-xxxxxxxxxxxx (12 hex characters).")
	}

	if len(r.Items) == 0 {
		errs = append(errs, "Items list cannot be empty.")
	} else {
		for i, item := range r.Items {
			if strings.TrimSpace(item.Code) == "" {
				errs = append(errs, fmt.Sprintf("Items[%d]: Code is required.", i))
			}
			if strings.TrimSpace(item.Description) == "" {
				errs = append(errs, fmt.Sprintf("Items[%d]: Description is required.", i))
			}
			if item.Quantity < 1 {
				errs = append(errs, fmt.Sprintf("Items[%d]: Quantity must be greater than 0.", i))
			}
		}
	}

	if r.RequestedShipDate.IsZero() {
		errs = append(errs, "RequestedShipDate is required.")
	}

	if r.TotalPrice.IsNegative() {
		errs = append(errs, "Total price must be greater than or equal to 0.")
	}

	if r.ExpectedExtendedPrice != nil {
		difference := r.TotalPrice.Sub(*r.ExpectedExtendedPrice).Abs()
		if difference.GreaterThan(priceTolerance) {
			errs = append(errs, fmt.Sprintf(
				"Total price (%s) does not match expected extended price from configuration (%s). Difference: %s. Please ensure totalPrice matches the extendedPrice from the configurator result.",
				r.TotalPrice.StringFixed(2),
				r.ExpectedExtendedPrice.StringFixed(2),
				difference.StringFixed(2)))
		}
	}

	return errs
}

// ToEntity converts the intake payload into the domain order.
func (r ErpOrderRequest) ToEntity() entities.ErpOrder {
	items := make([]entities.ErpOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.ErpOrderItem{
			Code:        item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}
	return entities.ErpOrder{
		OrderID:               r.OrderID,
		ConfigurationID:       r.ConfigurationID,
		Items:                 items,
		RequestedShipDate:     r.RequestedShipDate,
		RoutingFlags:          r.RoutingFlags,
		TotalPrice:            r.TotalPrice,
		ExpectedExtendedPrice: r.ExpectedExtendedPrice,
	}
}
