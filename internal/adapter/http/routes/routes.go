package routes

import (
	"log"

	_ "pgw_comprovantes/docs" // This will be auto-generated
	"pgw_comprovantes/internal/adapter/http/handlers"
	"pgw_comprovantes/internal/config"
	"pgw_comprovantes/internal/infrastructure/assets"
	"pgw_comprovantes/internal/infrastructure/mail"
	"pgw_comprovantes/internal/infrastructure/pdf"
	"pgw_comprovantes/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	// The logo asset is read once; the service only ever reads it.
	logoPNG := assets.LoadLogo(cfg.LogoPath)

	engine := pdf.NewEngine(logoPNG)
	mailer := mail.NewMailer(cfg)

	receiptUseCase := usecase.NewReceiptUseCase(engine, mailer, logoPNG)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReceiptRoutes(v1, receiptHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
