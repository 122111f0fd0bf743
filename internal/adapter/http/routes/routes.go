package routes

import (
	"os"
	"strconv"

	_ "coiltech/docs" // This will be auto-generated
	"coiltech/internal/adapter/documents"
	"coiltech/internal/adapter/http/handlers"
	"coiltech/internal/infrastructure/erp"
	"coiltech/internal/usecase"
	"coiltech/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the configurator API server
func Run() {
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

func getRoutes() {
	configuratorUseCase := usecase.NewConfiguratorUseCase()
	documentUseCase := usecase.NewDocumentUseCase(configuratorUseCase, documents.NewRenderer())

	var erpGateway interfaces.IErpGateway
	client, err := erp.NewClient(os.Getenv("ERP_BASE_URL"))
	if err != nil {
		zlog.Warn().Err(err).Msg("ERP gateway not configured")
	} else {
		erpGateway = client
	}

	orderUseCase := usecase.NewOrderUseCase(configuratorUseCase, erpGateway)

	configuratorHandler := handlers.NewConfiguratorHandler(configuratorUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfiguratorRoutes(v1, configuratorHandler, documentHandler, orderHandler)
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error().Interface("recovered", recovered).Msg("Recovered from panic")
		c.AbortWithStatus(500)
	}))
}
