package handlers

import (
	"context"
	"net/http"

	request "coiltech/internal/adapter/http/dto/request"
	"coiltech/internal/domain/entities"
	"coiltech/internal/usecase"
	"coiltech/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler exposes the printable artifacts derived from a priced
// configuration.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// SalesSheet prices the configuration and renders the sales sheet PDF.
//
// @Summary      Render the sales configuration sheet
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body request.ConfigurationRequest true "Configuration to document"
// @Success      200 {file} binary
// @Failure      400 {object} map[string]any
// @Router       /documents/sales-sheet [post]
func (h *DocumentHandler) SalesSheet(c *gin.Context) {
	h.render(c, h.usecase.SalesSheet)
}

// PlantInstructions prices the configuration and renders the plant
// manufacturing instructions PDF.
//
// @Summary      Render the plant manufacturing instructions
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body request.ConfigurationRequest true "Configuration to document"
// @Success      200 {file} binary
// @Failure      400 {object} map[string]any
// @Router       /documents/plant-instructions [post]
func (h *DocumentHandler) PlantInstructions(c *gin.Context) {
	h.render(c, h.usecase.PlantInstructions)
}

func (h *DocumentHandler) render(
	c *gin.Context,
	generate func(ctx context.Context, req entities.ConfigurationRequest) ([]byte, error),
) {
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

	pdf, err := generate(c.Request.Context(), req)
	if err != nil {
		appErr := mapConfiguratorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}
