package handlers

import (
	"net/http"
	"strings"

	request "coiltech/internal/adapter/http/dto/request"
	response "coiltech/internal/adapter/http/dto/response"
	"coiltech/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErpHandler is the mock order-entry intake: a stateless validator/echo
// service. It checks the payload shape and the price consistency against the
// configurator's output, then hands back an opaque order id. Nothing is
// persisted.
type ErpHandler struct{}

func NewErpHandler() *ErpHandler {
	return &ErpHandler{}
}

// CreateOrder accepts an order referencing a priced configuration.
//
// @Summary      Accept an order into the mock ERP
// @Tags         erp
// @Accept       json
// @Produce      json
// @Param        request body request.ErpOrderRequest true "Order payload"
// @Success      202 {object} response.ErpOrderResponse
// @Failure      400 {object} map[string]any
// @Router       /erp/orders [post]
func (h *ErpHandler) CreateOrder(c *gin.Context) {
	var payload request.ErpOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if details := payload.Validate(); len(details) > 0 {
		log.Warn().
			Str("order_id", payload.OrderID).
			Strs("errors", details).
			Msg("order validation failed")

		appErr := pkg.NewValidationError("VALIDATION_FAILED", "Validation failed.", details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	erpOrderID := newErpOrderID()

	log.Info().
		Str("order_id", payload.OrderID).
		Str("configuration_id", payload.ConfigurationID).
		Str("erp_order_id", erpOrderID).
		Str("total_price", payload.TotalPrice.StringFixed(2)).
		Msg("order accepted")

	c.JSON(http.StatusAccepted, response.ErpOrderResponse{Status: "accepted", ErpOrderID: erpOrderID})
}

// newErpOrderID builds the opaque order token: ERP- followed by 12 uppercase
// hex characters.
func newErpOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ERP-" + raw[:12]
}
