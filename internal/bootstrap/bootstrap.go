package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emrek/campusconnect/internal/app/controllers"
	appMigrations "github.com/emrek/campusconnect/internal/app/migrations"
	appRepos "github.com/emrek/campusconnect/internal/app/repositories"
	appRoutes "github.com/emrek/campusconnect/internal/app/routes"
	appServices "github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/config"
	"github.com/emrek/campusconnect/internal/db"
	appMiddleware "github.com/emrek/campusconnect/internal/middleware"
	"github.com/emrek/campusconnect/internal/pkg/filestorage"
	"github.com/emrek/campusconnect/internal/pkg/logger"
	"github.com/emrek/campusconnect/internal/pkg/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	ComplaintService  appServices.ComplaintService
	ProfileService    appServices.ProfileService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	SessionMiddleware *appMiddleware.SessionMiddleware
	SessionManager    *session.Manager
	Repos             *appRepos.Repositories
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.SessionManager = session.NewManager(session.NewMemoryStore(), session.ManagerConfig{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.SessionTTL(),
	})

	credentials := appServices.NewConstantCredentials(cfg.Admin.Username, cfg.Admin.Password)

	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, credentials, lgr)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository, deps.Repos.StudentRepository, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.StudentRepository, deps.FileStorage, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionManager)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionManager, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.ComplaintService, deps.ProfileService, deps.SessionManager, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.ComplaintService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.SessionMiddleware,
	)

	return router
}
