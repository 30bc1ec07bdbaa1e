package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/placemate/placemate/internal/app/controllers"
	appMigrations "github.com/placemate/placemate/internal/app/migrations"
	appRepos "github.com/placemate/placemate/internal/app/repositories"
	appRoutes "github.com/placemate/placemate/internal/app/routes"
	appServices "github.com/placemate/placemate/internal/app/services"
	"github.com/placemate/placemate/internal/config"
	"github.com/placemate/placemate/internal/db"
	appMiddleware "github.com/placemate/placemate/internal/middleware"
	pkgAuth "github.com/placemate/placemate/internal/pkg/auth"
	"github.com/placemate/placemate/internal/pkg/email"
	"github.com/placemate/placemate/internal/pkg/filestorage"
	"github.com/placemate/placemate/internal/pkg/helpers"
	"github.com/placemate/placemate/internal/pkg/identity"
	"github.com/placemate/placemate/internal/pkg/logger"
	"github.com/placemate/placemate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	IdentityStore  identity.Store
	JWTService     *pkgAuth.JWTService
	EmailSender    email.Sender
	FileStorage    *filestorage.LocalStorage
	AuthMiddleware *appMiddleware.AuthMiddleware

	AuthController         *appControllers.AuthController
	AdminController        *appControllers.AdminController
	AnalyticsController    *appControllers.AnalyticsController
	JobController          *appControllers.JobController
	NotificationController *appControllers.NotificationController
	StudentController      *appControllers.StudentController
	UploadController       *appControllers.UploadController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := filepath.Join("internal", "app", "migrations")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	identityTimeout := helpers.ParseDuration(cfg.Identity.CallTimeout, identity.DefaultCallTimeout)
	deps.IdentityStore = identity.NewPostgresStore(dbPool, identityTimeout)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		SessionTokenExp: helpers.ParseDuration(cfg.JWT.SessionTokenExpiration, 24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailSender = email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  "Placement Portal",
		FromEmail: cfg.SMTP.From,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.IdentityStore, deps.JWTService, deps.EmailSender, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.Services.Approval, lgr)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.Services.Analytics, lgr)
	deps.JobController = appControllers.NewJobController(deps.Services.Job, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.Notification, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student, deps.Services.Job, lgr)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage, deps.Services.Student, lgr)

	return deps, nil
}

// SeedDefaultData provisions the bootstrap admin account
func SeedDefaultData(ctx context.Context, deps *Dependencies, lgr zerolog.Logger) {
	if err := seed.CreateDefaultAdmin(ctx, deps.IdentityStore, deps.Repos.ProfileRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.AnalyticsController,
		deps.JobController,
		deps.NotificationController,
		deps.StudentController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
