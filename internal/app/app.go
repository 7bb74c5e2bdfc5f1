package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chainquest_backend/internal/config"
	"chainquest_backend/internal/controller"
	"chainquest_backend/internal/repository"
	"chainquest_backend/internal/service"
	"chainquest_backend/pkg/logger"
	"chainquest_backend/pkg/monitoring"
	"chainquest_backend/pkg/security"
	"chainquest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	catalog  *repository.CatalogRepository
	progress repository.ProgressStore
}

type services struct {
	progression *service.ProgressionService
	generation  *service.GenerationService
	auth        *service.AuthService
}

type controllers struct {
	content   *controller.ContentController
	progress  *controller.ProgressController
	adventure *controller.AdventureController
	chat      *controller.ChatController
	auth      *controller.AuthController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig pushes a freshly loaded config to every registered listener.
// Called by the config watcher on file change.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.services.generation.UpdateConfig(cfg.Generation)
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		catalog:  repository.NewCatalogRepository(),
		progress: repository.NewMemoryProgressStore(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		progression: service.NewProgressionService(repos.catalog, repos.progress),
		generation:  service.NewGenerationService(cfg.Generation),
		auth:        service.NewAuthService(cfg),
	}
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		content:   controller.NewContentController(s.progression),
		progress:  controller.NewProgressController(s.progression),
		adventure: controller.NewAdventureController(s.progression),
		chat:      controller.NewChatController(s.generation, s.progression),
		auth:      controller.NewAuthController(s.auth, a.Config),
		health:    controller.NewHealthController(repos.catalog),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("chainquest-academy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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
