package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/interviewmail/backend/docs"
	"github.com/interviewmail/backend/internal/auth"
	"github.com/interviewmail/backend/internal/config"
	"github.com/interviewmail/backend/internal/database"
	"github.com/interviewmail/backend/internal/handlers"
	"github.com/interviewmail/backend/internal/health"
	"github.com/interviewmail/backend/internal/logger"
	"github.com/interviewmail/backend/internal/mailer"
	"github.com/interviewmail/backend/internal/metrics"
	"github.com/interviewmail/backend/internal/middlewares"
	"github.com/interviewmail/backend/internal/repositories"
	"github.com/interviewmail/backend/internal/services"
	"github.com/interviewmail/backend/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// maxUploadMemory is the part of a multipart form kept in memory, the rest spills to temp files
const maxUploadMemory = 32 << 20

// @title InterviewMail API
// @version 1.0
// @description Admin API for composing, tracking and dispatching interview emails

// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting InterviewMail API")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Connect(ctx, cfg.DSN())
	cancel()
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	fileStorage := storage.NewLocalStorage(cfg.Attachments.BasePath)
	if err := fileStorage.Check(); err != nil {
		logger.Logger.Fatal("Attachment storage is not usable", zap.Error(err))
	}

	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	sendMetrics := metrics.New(prometheus.DefaultRegisterer)
	transport := mailer.NewSMTPTransport(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Timeout)

	// Repositories
	positionRepo := repositories.NewPositionRepository(db)
	templateTypeRepo := repositories.NewTemplateTypeRepository(db)
	customVariableRepo := repositories.NewCustomVariableRepository(db)
	templateRepo := repositories.NewEmailTemplateRepository(db)
	recipientRepo := repositories.NewRecipientRepository(db)
	sentEmailRepo := repositories.NewSentEmailRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)

	// Services
	adminServices := handlers.AdminServices{
		Positions:       services.NewPositionService(positionRepo, logger.Logger),
		TemplateTypes:   services.NewTemplateTypeService(templateTypeRepo, logger.Logger),
		CustomVariables: services.NewCustomVariableService(customVariableRepo, logger.Logger),
		Templates:       services.NewEmailTemplateService(templateRepo, templateTypeRepo, logger.Logger),
		Recipients:      services.NewRecipientService(recipientRepo, positionRepo, logger.Logger),
		SentEmails: services.NewSentEmailService(services.SentEmailDependencies{
			Repo:        sentEmailRepo,
			Attachments: attachmentRepo,
			Recipients:  recipientRepo,
			Templates:   templateRepo,
			Variables:   customVariableRepo,
			Storage:     fileStorage,
			Transport:   transport,
			Metrics:     sendMetrics,
		}, services.DispatchConfig{
			From:              cfg.SMTP.From,
			InterviewLocation: cfg.InterviewLocation,
			MaxFileSize:       cfg.Attachments.MaxFileSize,
			MaxTotalSize:      cfg.Attachments.MaxTotalSize,
		}, logger.Logger),
	}

	adminHandler := handlers.NewAdminHandler(adminServices, maxUploadMemory, logger.Logger)
	healthHandler := health.NewHandler(db, fileStorage, prometheus.DefaultRegisterer)
	operatorMiddleware := auth.RoleMiddleware(tokenGenerator, cfg.APIKey, auth.RoleOperator)

	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(logger.Middleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(cfg.Attachments.MaxRequestSize()))

	// Health checks and metrics
	r.Get("/live", healthHandler.LiveEndpoint)
	r.Get("/ready", healthHandler.ReadyEndpoint)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(operatorMiddleware)
			adminHandler.RegisterRoutes(r)
		})
	})

	// Dispatch talks to SMTP inside the request, so writes get a long deadline
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
