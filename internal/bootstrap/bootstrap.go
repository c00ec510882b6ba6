package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/registrar/internal/app/controllers"
	appMigrations "github.com/yigit/registrar/internal/app/migrations"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	appRoutes "github.com/yigit/registrar/internal/app/routes"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/db"
	appMiddleware "github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	CourseService     appServices.CourseService
	StudentController *appControllers.StudentController
	CourseController  *appControllers.CourseController
	Repos             *appRepos.Repositories
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

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "registrar",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and optionally seeds demo data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(dbPool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database appRepos.TxStarter, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.CourseService = appServices.NewCourseService(database)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	corsConfig, err := newCORSConfig(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		cors.New(corsConfig),
	)

	appRoutes.SetupRouter(router, deps.StudentController, deps.CourseController)

	return router, nil
}

// newCORSConfig builds the CORS policy from the configured origin list. An empty list allows every origin.
func newCORSConfig(cfg *config.Config) (cors.Config, error) {
	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{appMiddleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := cfg.AllowedOrigins()
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	if err := corsConfig.Validate(); err != nil {
		return cors.Config{}, fmt.Errorf("invalid CORS configuration: %w", err)
	}
	return corsConfig, nil
}
