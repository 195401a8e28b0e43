// Package bootstrap assembles the application: configuration, logging,
// database, repositories, services, controllers and the HTTP router.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/upslabs/reservalab/internal/app/controllers"
	appMigrations "github.com/upslabs/reservalab/internal/app/migrations"
	appRepos "github.com/upslabs/reservalab/internal/app/repositories"
	appRoutes "github.com/upslabs/reservalab/internal/app/routes"
	appServices "github.com/upslabs/reservalab/internal/app/services"
	"github.com/upslabs/reservalab/internal/config"
	"github.com/upslabs/reservalab/internal/db"
	appMiddleware "github.com/upslabs/reservalab/internal/middleware"
	pkgAuth "github.com/upslabs/reservalab/internal/pkg/auth"
	"github.com/upslabs/reservalab/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	AdminService          *appServices.AdminService
	ReservationService    *appServices.ReservationService
	AuthController        *appControllers.AuthController
	AdminController       *appControllers.AdminController
	ReservationController *appControllers.ReservationController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.AdminRepository,
		deps.Repos.UserRepository,
		deps.Repos.ReservationRepository,
		deps.JWTService,
		lgr,
	)
	deps.ReservationService = appServices.NewReservationService(
		deps.Repos.ReservationRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.TokenRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.ReservationController = appControllers.NewReservationController(deps.ReservationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(appMiddleware.TransactionLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.ReservationController,
		deps.AuthMiddleware,
	)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
