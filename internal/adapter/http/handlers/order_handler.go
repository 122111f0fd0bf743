package handlers

import (
	"errors"
	"net/http"
	"time"

	request "coiltech/internal/adapter/http/dto/request"
	response "coiltech/internal/adapter/http/dto/response"
	"coiltech/internal/infrastructure/erp"
	"coiltech/internal/usecase"
	"coiltech/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Request body is required and must be a valid order payload.", http.StatusBadRequest)

// OrderHandler forwards priced configurations to the order-entry system.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// OrderRequest wraps the configuration to order with the requested ship date.
type OrderRequest struct {
	Configuration     request.ConfigurationRequest `json:"configuration" binding:"required"`
	RequestedShipDate time.Time                    `json:"requestedShipDate" binding:"required"`
}

// SubmitOrder prices the configuration and forwards it to the ERP.
//
// @Summary      Price a configuration and submit it as an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body OrderRequest true "Configuration and requested ship date"
// @Success      202 {object} response.OrderConfirmationResponse
// @Failure      400 {object} map[string]any
// @Failure      502 {object} map[string]any
// @Router       /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	req, err := payload.Configuration.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	confirmation, err := h.usecase.Submit(c.Request.Context(), req, payload.RequestedShipDate)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromOrderConfirmation(confirmation))
}

func mapOrderError(err error) *pkg.AppError {
	var invalid *usecase.InvalidConfigurationError
	if errors.As(err, &invalid) {
		return pkg.NewValidationError("VALIDATION_FAILED", "Validation failed.", invalid.Details, http.StatusBadRequest)
	}
	if errors.Is(err, erp.ErrOrderRejected) {
		return pkg.NewDomainError("ORDER_REJECTED", "The order-entry system rejected the order.", err, http.StatusUnprocessableEntity)
	}
	log.Error().Err(err).Msg("order submission failed")
	return pkg.NewDomainError("ERP_UNAVAILABLE", "The order-entry system could not be reached.", err, http.StatusBadGateway)
}
