package routes

import (
	"coiltech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConfigurator = "/configurator"
	PathDocuments    = "/documents"
	PathOrders       = "/orders"
)

func addConfiguratorRoutes(rg *gin.RouterGroup, configuratorHandler *handlers.ConfiguratorHandler, documentHandler *handlers.DocumentHandler, orderHandler *handlers.OrderHandler) {
	configurator := rg.Group(PathConfigurator)
	{
		configurator.POST("/price", configuratorHandler.PriceConfiguration)
		configurator.POST("/validate", configuratorHandler.ValidateConfiguration)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("/sales-sheet", documentHandler.SalesSheet)
		documents.POST("/plant-instructions", documentHandler.PlantInstructions)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.SubmitOrder)
	}
}
