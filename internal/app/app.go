package app

import (
	"codedex_backend/internal/config"
	"codedex_backend/internal/controller"
	"codedex_backend/internal/repository"
	"codedex_backend/internal/service"
	"codedex_backend/pkg/database"
	"codedex_backend/pkg/logger"
	"codedex_backend/pkg/monitoring"
	"codedex_backend/pkg/security"
	"codedex_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	chapter    *repository.ChapterRepository
	exercise   *repository.ExerciseRepository
	progress   *repository.ProgressRepository
	setting    *repository.SettingRepository
	staticPage *repository.StaticPageRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	progress   *service.ProgressService
	catalog    *service.CatalogService
	content    *service.ContentService
	setting    *service.SettingService
	staticPage *service.StaticPageService
	stats      *service.StatsService
	storage    *service.StorageService
}

type controllers struct {
	auth          *controller.AuthController
	progress      *controller.ProgressController
	catalog       *controller.CatalogController
	adminCourse   *controller.AdminCourseController
	adminChapter  *controller.AdminChapterController
	adminExercise *controller.AdminExerciseController
	adminUser     *controller.AdminUserController
	adminSettings *controller.AdminSettingsController
	adminPage     *controller.AdminPageController
	adminStats    *controller.AdminStatsController
	health        *controller.HealthController
}

// RegisterConfigCallback subscribes a component to config hot reloads.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a freshly loaded config to the running app. Only the
// hot-reloadable sections take effect; server port and database settings need
// a restart.
func (a *App) ReloadConfig(newCfg *config.Config) {
	a.Config.ApplyReloadable(newCfg)

	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		chapter:    repository.NewChapterRepository(db),
		exercise:   repository.NewExerciseRepository(db),
		progress:   repository.NewProgressRepository(db),
		setting:    repository.NewSettingRepository(db),
		staticPage: repository.NewStaticPageRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.progress, cfg)
	s.progress = service.NewProgressService(repos.exercise, repos.progress)
	s.catalog = service.NewCatalogService(repos.course, repos.progress, rdb)
	s.content = service.NewContentService(repos.course, repos.chapter, repos.exercise, s.catalog, storage)
	s.setting = service.NewSettingService(repos.setting, rdb)
	s.staticPage = service.NewStaticPageService(repos.staticPage)
	s.stats = service.NewStatsService(repos.user, repos.progress)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth, s.user, a.Config.Server.Mode == "release"),
		progress:      controller.NewProgressController(s.progress),
		catalog:       controller.NewCatalogController(s.catalog, s.staticPage),
		adminCourse:   controller.NewAdminCourseController(s.content),
		adminChapter:  controller.NewAdminChapterController(s.content),
		adminExercise: controller.NewAdminExerciseController(s.content),
		adminUser:     controller.NewAdminUserController(s.user),
		adminSettings: controller.NewAdminSettingsController(s.setting),
		adminPage:     controller.NewAdminPageController(s.staticPage),
		adminStats:    controller.NewAdminStatsController(s.stats),
		health:        controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codedex-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
