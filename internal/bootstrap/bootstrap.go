package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/adarsh/schoolsite/internal/app/controllers"
	appMigrations "github.com/adarsh/schoolsite/internal/app/migrations"
	"github.com/adarsh/schoolsite/internal/app/models"
	appRepos "github.com/adarsh/schoolsite/internal/app/repositories"
	appRoutes "github.com/adarsh/schoolsite/internal/app/routes"
	appServices "github.com/adarsh/schoolsite/internal/app/services"
	"github.com/adarsh/schoolsite/internal/config"
	"github.com/adarsh/schoolsite/internal/db"
	appMiddleware "github.com/adarsh/schoolsite/internal/middleware"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
	"github.com/adarsh/schoolsite/internal/pkg/mediastore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	NewsService       appServices.EntityService[models.News]
	FacultyService    appServices.EntityService[models.Faculty]
	GalleryService    appServices.EntityService[models.Gallery]
	NewsController    *appControllers.NewsController
	FacultyController *appControllers.FacultyController
	GalleryController *appControllers.GalleryController
	Repos             *appRepos.Repositories
	Uploader          mediastore.Uploader
	Logger            zerolog.Logger
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

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services, the media uploader
// and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	uploader, err := mediastore.NewOSSUploader(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize media storage")
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}
	deps.Uploader = uploader

	deps.NewsService = appServices.NewEntityService[models.News](deps.Repos.NewsRepository)
	deps.FacultyService = appServices.NewEntityService[models.Faculty](deps.Repos.FacultyRepository)
	deps.GalleryService = appServices.NewEntityService[models.Gallery](deps.Repos.GalleryRepository)

	deps.NewsController = appControllers.NewNewsController(deps.NewsService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService, deps.Uploader)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService, deps.Uploader)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.NewsController,
		deps.FacultyController,
		deps.GalleryController,
	)

	return router
}
