package handlers

import (
	"errors"
	"net/http"

	request "coiltech/internal/adapter/http/dto/request"
	response "coiltech/internal/adapter/http/dto/response"
	"coiltech/internal/usecase"
	"coiltech/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Request body is required and must be a valid configuration payload.", http.StatusBadRequest)

// ConfiguratorHandler handles pricing and validation requests.
type ConfiguratorHandler struct {
	usecase usecase.IConfiguratorUseCase
}

func NewConfiguratorHandler(uc usecase.IConfiguratorUseCase) *ConfiguratorHandler {
	return &ConfiguratorHandler{usecase: uc}
}

// PriceConfiguration prices a product configuration.
//
// @Summary      Price a product configuration
// @Description  Validates the configuration and derives unit price, extended price, bill of materials and the deterministic configuration id.
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        request body request.ConfigurationRequest true "Configuration to price"
// @Success      200 {object} response.PricedConfigurationResponse
// @Failure      400 {object} map[string]any
// @Failure      500 {object} map[string]any
// @Router       /configurator/price [post]
func (h *ConfiguratorHandler) PriceConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	priced, err := h.usecase.Price(req)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Info().
		Str("configuration_id", priced.ConfigurationID).
		Str("product_type", string(priced.ProductType)).
		Str("unit_price", priced.UnitPrice.StringFixed(2)).
		Str("extended_price", priced.ExtendedPrice.StringFixed(2)).
		Msg("configuration priced")

	c.JSON(http.StatusOK, response.FromPricedConfiguration(priced))
}

// ValidateConfiguration runs validation only, without pricing.
//
// @Summary      Validate a product configuration
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        request body request.ConfigurationRequest true "Configuration to validate"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]any
// @Router       /configurator/validate [post]
func (h *ConfiguratorHandler) ValidateConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if ok, details := h.usecase.Validate(req); !ok {
		appErr := pkg.NewValidationError("VALIDATION_FAILED", "Validation failed.", details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request is valid."})
}

// mapConfiguratorError translates use case errors to transport errors.
// Internal computation failures are logged and surfaced opaquely.
func mapConfiguratorError(err error) *pkg.AppError {
	var invalid *usecase.InvalidConfigurationError
	if errors.As(err, &invalid) {
		return pkg.NewValidationError("VALIDATION_FAILED", "Validation failed.", invalid.Details, http.StatusBadRequest)
	}
	log.Error().Err(err).Msg("configuration pricing failed")
	return pkg.NewDomainError("INTERNAL_ERROR", "An error occurred while pricing the configuration.", err, http.StatusInternalServerError)
}
