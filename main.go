package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dbvaultapi/bootstrap"
	"dbvaultapi/config"
	"dbvaultapi/controllers"
	_ "dbvaultapi/docs"
	"dbvaultapi/pkg/logger"
	"dbvaultapi/pkg/token"
	"dbvaultapi/services"
	"dbvaultapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           dbvaultapi
// @version         1.0
// @description     Database credential vault with on-demand schema introspection

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting %s with log level: %s", utils.AppTitle, config.Cfg.LogLevel)

	// 3) Connect DB (GORM) and migrate
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}
	if err := bootstrap.Migrate(); err != nil {
		log.Fatalf("Migrate error: %v", err)
	}

	// 4) Wire services
	tokenManager, err := token.NewManager(
		config.Cfg.JWTSecret,
		config.Cfg.JWTAlgorithm,
		config.Cfg.AccessTokenExpire,
	)
	if err != nil {
		log.Fatalf("Token manager error: %v", err)
	}
	controllers.SetAuthService(services.NewAuthService(tokenManager))
	controllers.SetCredentialService(services.NewCredentialService())

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())

	controllers.RegisterHealthRoutes(router)
	controllers.RegisterUserRoutes(router)
	controllers.RegisterDBOperationRoutes(router)

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, stopping server")
		os.Exit(0)
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.Port)
	router.Run("0.0.0.0:" + config.Cfg.Port)
}
