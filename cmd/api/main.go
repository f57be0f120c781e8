package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "compras/api/swagger" // swagger docs
	"compras/internal/config"
	"compras/internal/database"
	"compras/internal/handler"
	"compras/internal/middleware"
	"compras/internal/model"
	"compras/internal/notification"
	"compras/internal/repository"
	"compras/internal/service"
	"compras/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Compras API
// @version         1.0
// @description     Purchase requests, approvals, supplier quotes and quote comparison.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.NewConnection(cfg.DSN(), cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	solicitacaoRepo := repository.NewSolicitacaoRepository(db)
	cotacaoRepo := repository.NewCotacaoRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	centroCustoRepo := repository.NewCentroCustoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	notifiers := notification.Multi{wsHub}
	if cfg.MailEnabled() {
		notifiers = append(notifiers, notification.NewMailer(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		}, usuarioRepo))
		log.Printf("E-mail notifications enabled via %s", cfg.SMTPHost)
	}

	solicitacaoService := service.NewSolicitacaoService(txManager, solicitacaoRepo, auditRepo, notifiers)
	cotacaoService := service.NewCotacaoService(txManager, solicitacaoRepo, cotacaoRepo, fornecedorRepo, auditRepo, notifiers)
	fornecedorService := service.NewFornecedorService(txManager, fornecedorRepo, auditRepo)
	centroCustoService := service.NewCentroCustoService(txManager, centroCustoRepo, auditRepo)
	usuarioService := service.NewUsuarioService(txManager, usuarioRepo, auditRepo, service.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.JWTTTL,
	})
	auditService := service.NewAuditService(auditRepo)
	statisticsService := service.NewStatisticsService(solicitacaoRepo, cotacaoRepo)

	// Initialize Handlers
	solicitacaoHandler := handler.NewSolicitacaoHandler(solicitacaoService)
	cotacaoHandler := handler.NewCotacaoHandler(cotacaoService)
	fornecedorHandler := handler.NewFornecedorHandler(fornecedorService)
	centroCustoHandler := handler.NewCentroCustoHandler(centroCustoService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	auditHandler := handler.NewAuditHandler(auditService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	diagnosticsHandler := handler.NewDiagnosticsHandler(database.NewPinger(db))

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	secret := []byte(cfg.JWTSecret)
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, secret, cfg.AuthRequired)
	})

	// API Routing
	public := router.Group("/api")
	usuarioHandler.RegisterPublicRoutes(public)
	diagnosticsHandler.RegisterRoutes(public)

	api := router.Group("/api")
	api.Use(middleware.Authenticate(secret, cfg.AuthRequired))

	var managers []gin.HandlerFunc
	var accounts handler.UsuarioGuards
	if cfg.AuthRequired {
		managers = append(managers, middleware.RequireAccess(model.AcessoAzul, model.AcessoMarrom))
		accounts.Admin = append(accounts.Admin, middleware.RequireAccess(model.AcessoMarrom))
		accounts.SelfOrAdmin = append(accounts.SelfOrAdmin, middleware.RequireSelfOrAccess("id", model.AcessoMarrom))
	}

	solicitacaoHandler.RegisterRoutes(api)
	cotacaoHandler.RegisterRoutes(api)
	fornecedorHandler.RegisterRoutes(api)
	centroCustoHandler.RegisterRoutes(api)
	usuarioHandler.RegisterRoutes(api, accounts)
	auditHandler.RegisterRoutes(api, managers...)
	statisticsHandler.RegisterRoutes(api, managers...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
