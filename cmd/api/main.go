package main

import (
	"net/http"
	"time"

	_ "clientportal/api/swagger" // swagger docs
	"clientportal/internal/config"
	"clientportal/internal/database"
	"clientportal/internal/events"
	"clientportal/internal/handler"
	"clientportal/internal/middleware"
	"clientportal/internal/repository"
	"clientportal/internal/service"
	"clientportal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Client Portal API
// @version         1.0
// @description     Client portal for a financial/legal advisory firm: service requests, tasks, documents, invoices and a canned-answer assistant.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "clientportal-api",
	}); err != nil {
		panic(err)
	}
	log := logger.L()
	defer func() { _ = log.Sync() }()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	// Set up event hub for live entity notifications
	hub := events.NewHub()
	go hub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	chatRepo := repository.NewChatHistoryRepository(db)
	templateRepo := repository.NewResourceTemplateRepository(db)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, []byte(cfg.JWTSecret))
	orgService := service.NewOrganizationService(orgRepo)
	requestService := service.NewRequestService(requestRepo, orgRepo, txManager, hub)
	taskService := service.NewTaskService(taskRepo, hub)
	documentService := service.NewDocumentService(documentRepo, hub)
	invoiceService := service.NewInvoiceService(invoiceRepo, hub)
	chatService := service.NewChatService(chatRepo)
	templateService := service.NewResourceTemplateService(templateRepo)

	userHandler := handler.NewUserHandler(userService, chatService)
	authHandler := handler.NewAuthHandler(authService, userService, []byte(cfg.JWTSecret))
	orgHandler := handler.NewOrganizationHandler(orgService, requestService, documentService, invoiceService)
	requestHandler := handler.NewRequestHandler(requestService, taskService)
	taskHandler := handler.NewTaskHandler(taskService)
	documentHandler := handler.NewDocumentHandler(documentService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	chatHandler := handler.NewChatHandler(chatService)
	templateHandler := handler.NewResourceTemplateHandler(templateService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(), middleware.Metrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// WebSocket endpoint for live entity events
	router.GET("/ws", func(c *gin.Context) {
		events.ServeWs(hub, c, []byte(cfg.JWTSecret))
	})

	// Register API routes
	root := router.Group("")
	userHandler.RegisterRoutes(root)
	authHandler.RegisterRoutes(root)
	orgHandler.RegisterRoutes(root)
	requestHandler.RegisterRoutes(root)
	taskHandler.RegisterRoutes(root)
	documentHandler.RegisterRoutes(root)
	invoiceHandler.RegisterRoutes(root)
	chatHandler.RegisterRoutes(root)
	templateHandler.RegisterRoutes(root)

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
