package interfaces

import (
	"context"

	"coiltech/internal/domain/entities"
)

// IErpGateway abstracts the external order-entry (ERP) system.
//
// The configurator uses it to forward a priced configuration as an order and
// receives the opaque ERP order identifier on acceptance.
type IErpGateway interface {
	CreateOrder(ctx context.Context, order entities.ErpOrder) (erpOrderID string, err error)
}
