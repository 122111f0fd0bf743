package main

import (
	"os"
	"time"

	_ "coiltech/docs"
	"coiltech/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           CoilTech Configurator API
// @version         1.0
// @description     Product configurator for made-to-order HVAC equipment: validation, pricing, printable documents and ERP order submission.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	routes.Run()
}
