package interfaces

import (
	"context"

	"coiltech/internal/domain/entities"
)

// IDocumentRenderer abstracts the presentation transform from a priced
// configuration to printable artifacts. Implementations hold no business
// logic; everything they need is already on the PricedConfiguration.
type IDocumentRenderer interface {
	RenderSalesSheet(ctx context.Context, cfg entities.PricedConfiguration) ([]byte, error)
	RenderPlantInstructions(ctx context.Context, cfg entities.PricedConfiguration) ([]byte, error)
}
