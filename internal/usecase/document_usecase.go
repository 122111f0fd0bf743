package usecase

import (
	"context"

	"coiltech/internal/domain/entities"
	"coiltech/internal/usecase/interfaces"
)

// IDocumentUseCase prices a configuration and renders the printable
// artifacts from the result.
type IDocumentUseCase interface {
	SalesSheet(ctx context.Context, req entities.ConfigurationRequest) ([]byte, error)
	PlantInstructions(ctx context.Context, req entities.ConfigurationRequest) ([]byte, error)
}

type DocumentUseCase struct {
	configurator IConfiguratorUseCase
	renderer     interfaces.IDocumentRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(configurator IConfiguratorUseCase, renderer interfaces.IDocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{configurator: configurator, renderer: renderer}
}

func (u *DocumentUseCase) SalesSheet(ctx context.Context, req entities.ConfigurationRequest) ([]byte, error) {
	priced, err := u.configurator.Price(req)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderSalesSheet(ctx, priced)
}

func (u *DocumentUseCase) PlantInstructions(ctx context.Context, req entities.ConfigurationRequest) ([]byte, error) {
	priced, err := u.configurator.Price(req)
	if err != nil {
		return nil, err
	}
	return u.renderer.RenderPlantInstructions(ctx, priced)
}
