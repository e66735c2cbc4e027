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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Javohir0411/global-school/docs" // Import generated swagger docs
	appControllers "github.com/Javohir0411/global-school/internal/app/controllers"
	appMigrations "github.com/Javohir0411/global-school/internal/app/migrations"
	appRepos "github.com/Javohir0411/global-school/internal/app/repositories"
	appRoutes "github.com/Javohir0411/global-school/internal/app/routes"
	appServices "github.com/Javohir0411/global-school/internal/app/services"
	"github.com/Javohir0411/global-school/internal/config"
	"github.com/Javohir0411/global-school/internal/db"
	appMiddleware "github.com/Javohir0411/global-school/internal/middleware"
	pkgAuth "github.com/Javohir0411/global-school/internal/pkg/auth"
	"github.com/Javohir0411/global-school/internal/pkg/helpers"
	"github.com/Javohir0411/global-school/internal/pkg/logger"
	"github.com/Javohir0411/global-school/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	AttendanceService    appServices.AttendanceService
	SubjectService       appServices.SubjectService
	TeacherService       appServices.TeacherService
	StudentService       appServices.StudentService
	GroupService         appServices.GroupService
	PaymentService       appServices.PaymentService
	AdminService         appServices.AdminService
	UserService          appServices.UserService
	AuthController       *appControllers.AuthController
	AttendanceController *appControllers.AttendanceController
	SubjectController    *appControllers.SubjectController
	TeacherController    *appControllers.TeacherController
	StudentController    *appControllers.StudentController
	GroupController      *appControllers.GroupController
	PaymentController    *appControllers.PaymentController
	AdminController      *appControllers.AdminController
	UserController       *appControllers.UserController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.AdminRepository,
		deps.Repos.TeacherRepository,
		deps.JWTService,
		lgr,
	)

	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		cfg.Attendance.StrictStudents,
	)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository, deps.Repos.SubjectRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository, deps.Repos.SubjectRepository)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.PaymentRepository, deps.Repos.StudentRepository)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SubjectController,
		deps.TeacherController,
		deps.StudentController,
		deps.GroupController,
		deps.AttendanceController,
		deps.PaymentController,
		deps.AdminController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
