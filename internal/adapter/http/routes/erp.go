package routes

import (
	"net/http"
	"strconv"

	"coiltech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

const ErpPORT = 8081

// RunErp starts the mock plant ERP intake on its own port. It is a separate
// process in production; running it in-repo keeps the order flow testable
// end to end.
func RunErp() {
	erpRouter := gin.Default()
	setMiddlewares(erpRouter)

	erpHandler := handlers.NewErpHandler()

	erpGroup := erpRouter.Group("/erp")
	{
		erpGroup.POST("/orders", erpHandler.CreateOrder)
		erpGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
	}

	err := erpRouter.Run(":" + strconv.Itoa(ErpPORT))
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to startup the ERP intake")
	}
}
