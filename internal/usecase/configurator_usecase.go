package usecase

import (
	"fmt"
	"strings"

	"coiltech/internal/domain/entities"
	"coiltech/internal/domain/pricing"
	"coiltech/internal/domain/validation"
)

// InvalidConfigurationError carries the full, ordered list of violated
// business rules. Handlers surface Details verbatim; nothing is
// short-circuited.
type InvalidConfigurationError struct {
	Details []string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("configuration failed validation: %s", strings.Join(e.Details, "; "))
}

// IConfiguratorUseCase exposes the configurator core operations.
type IConfiguratorUseCase interface {
	Validate(req entities.ConfigurationRequest) (bool, []string)
	Price(req entities.ConfigurationRequest) (entities.PricedConfiguration, error)
}

type ConfiguratorUseCase struct{}

var _ IConfiguratorUseCase = (*ConfiguratorUseCase)(nil)

func NewConfiguratorUseCase() *ConfiguratorUseCase {
	return &ConfiguratorUseCase{}
}

// Validate runs the business-rule validator without pricing.
func (u *ConfiguratorUseCase) Validate(req entities.ConfigurationRequest) (bool, []string) {
	return validation.Validate(req)
}

// Price validates the request and hands it to the pricing engine. The engine
// itself never re-validates; this use case is the caller that guarantees its
// precondition.
func (u *ConfiguratorUseCase) Price(req entities.ConfigurationRequest) (entities.PricedConfiguration, error) {
	if ok, details := validation.Validate(req); !ok {
		return entities.PricedConfiguration{}, &InvalidConfigurationError{Details: details}
	}
	return pricing.Price(req)
}
