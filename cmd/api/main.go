package main

import (
	_ "pgw_comprovantes/docs"
	"pgw_comprovantes/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Comprovante Service API
// @version         1.0
// @description     Renders PIX payment receipts (PDF) and delivers them by email via SMTP.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  contato@pgwpay.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
