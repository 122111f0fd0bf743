package usecase

import (
	"context"
	"errors"
	"time"

	"coiltech/internal/domain/entities"
	"coiltech/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrErpGatewayNotConfigured is returned when no gateway was wired at
// startup; the router injects nil when ERP_BASE_URL is unset and mock mode
// is off.
var ErrErpGatewayNotConfigured = errors.New("erp gateway not configured")

// RoutingFlagExpress marks an order for the express build lane; the ERP reads
// it from routingFlags, the plant reads it from the OPT-EXP line.
const (
	RoutingFlagExpress  = "EXPRESS BUILD"
	RoutingFlagStandard = "STANDARD BUILD"
)

// IOrderUseCase prices a configuration and forwards the result to the
// order-entry system.
type IOrderUseCase interface {
	Submit(ctx context.Context, req entities.ConfigurationRequest, requestedShipDate time.Time) (entities.OrderConfirmation, error)
}

type OrderUseCase struct {
	configurator IConfiguratorUseCase
	gateway      interfaces.IErpGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(configurator IConfiguratorUseCase, gateway interfaces.IErpGateway) *OrderUseCase {
	return &OrderUseCase{configurator: configurator, gateway: gateway}
}

// Submit prices the configuration and builds the ERP order from the priced
// result: items mirror the bill of materials, totalPrice carries the
// extended price and expectedExtendedPrice repeats it so the intake can
// cross-check the two systems.
func (u *OrderUseCase) Submit(ctx context.Context, req entities.ConfigurationRequest, requestedShipDate time.Time) (entities.OrderConfirmation, error) {
	priced, err := u.configurator.Price(req)
	if err != nil {
		return entities.OrderConfirmation{}, err
	}

	if u.gateway == nil {
		log.Warn().Str("configuration_id", priced.ConfigurationID).Msg("erp gateway not configured")
		return entities.OrderConfirmation{}, ErrErpGatewayNotConfigured
	}

	items := make([]entities.ErpOrderItem, 0, len(priced.BOM))
	for _, line := range priced.BOM {
		items = append(items, entities.ErpOrderItem{
			Code:        line.Code,
			Description: line.Description,
			Quantity:    line.Qty,
		})
	}

	routing := RoutingFlagStandard
	if priced.HasOptionLine("OPT-EXP") {
		routing = RoutingFlagExpress
	}

	expected := priced.ExtendedPrice
	order := entities.ErpOrder{
		OrderID:               uuid.NewString(),
		ConfigurationID:       priced.ConfigurationID,
		Items:                 items,
		RequestedShipDate:     requestedShipDate,
		RoutingFlags:          []string{routing},
		TotalPrice:            priced.ExtendedPrice,
		ExpectedExtendedPrice: &expected,
	}

	erpOrderID, err := u.gateway.CreateOrder(ctx, order)
	if err != nil {
		return entities.OrderConfirmation{}, err
	}

	log.Info().
		Str("configuration_id", priced.ConfigurationID).
		Str("erp_order_id", erpOrderID).
		Str("total_price", priced.ExtendedPrice.StringFixed(2)).
		Msg("order forwarded to erp")

	return entities.OrderConfirmation{
		ErpOrderID:      erpOrderID,
		ConfigurationID: priced.ConfigurationID,
		TotalPrice:      priced.ExtendedPrice,
		Status:          "accepted",
	}, nil
}
