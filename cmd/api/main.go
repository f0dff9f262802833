package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/recruit-ops/internal/api/http"
	"github.com/spec-kit/recruit-ops/internal/api/http/handlers"
	"github.com/spec-kit/recruit-ops/internal/auth"
	"github.com/spec-kit/recruit-ops/internal/cache"
	"github.com/spec-kit/recruit-ops/internal/config"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/observability"
	"github.com/spec-kit/recruit-ops/internal/persistence"
	"github.com/spec-kit/recruit-ops/internal/ratelimit"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/service"
	"github.com/spec-kit/recruit-ops/internal/storage"
	"github.com/spec-kit/recruit-ops/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, persistence.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	hrStore, err := openHRStore(cfg.Data, logger)
	if err != nil {
		logger.Fatal("failed to open hr data", zap.Error(err))
	}

	var (
		userRepo    repository.UserRepository
		postingRepo repository.JobPostingRepository
		benchRepo   repository.BenchRepository
		appRepo     repository.JobApplicationRepository
	)
	if pg.Enabled() {
		userRepo = repository.NewUserRepository(pg.Pool)
		postingRepo = repository.NewJobPostingRepository(pg.Pool)
		benchRepo = repository.NewBenchRepository(pg.Pool)
		appRepo = repository.NewJobApplicationRepository(pg.Pool)
		seedJobPostings(ctx, postingRepo, logger)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		postingRepo = repository.NewMemoryJobPostingRepository(repository.SeedJobPostings()...)
		benchRepo = repository.NewMemoryBenchRepository()
		appRepo = repository.NewMemoryJobApplicationRepository()
	}

	var resumeStore storage.Storage
	if cfg.Storage.Configured() {
		resumeStore, err = storage.NewMinIO(ctx, cfg.Storage)
		if err != nil {
			logger.Warn("resume storage unavailable; uploads disabled", zap.Error(err))
			resumeStore = nil
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification, metrics)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{UserRepo: userRepo, Logger: logger})
	if created, err := authService.EnsureAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	} else if created {
		logger.Info("admin account created", zap.String("email", cfg.Auth.AdminEmail))
	}
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	hrService := service.NewHROperationsService(service.HROperationsDependencies{
		Store:          hrStore,
		StatsCache:     cache.NewStatsCache(redis.Client, cfg.Redis.StatsCacheTTL),
		Dispatcher:     dispatcher,
		Logger:         logger,
		StaleThreshold: cfg.Scheduler.StaleThreshold,
	})
	postingService := service.NewJobPostingService(service.JobPostingDependencies{
		Repo:       postingRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	applicationService := service.NewJobApplicationService(service.JobApplicationDependencies{
		Repo:       appRepo,
		Postings:   postingRepo,
		Storage:    resumeStore,
		Dispatcher: dispatcher,
		Logger:     logger,
		PresignTTL: cfg.Storage.PresignTTL,
	})
	benchService := service.NewBenchService(benchRepo, logger)

	worker.StartNotificationWorker(ctx, notificationService, logger)
	schedulerInterval := cfg.Scheduler.Interval
	if !cfg.Scheduler.Enabled {
		schedulerInterval = 0
	}
	schedulerDone := worker.StartDailyOperationsWorker(ctx, hrService, schedulerInterval, logger)

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:            handlers.NewAuthHandler(authService),
		Dashboard:       handlers.NewDashboardHandler(hrService),
		HR:              handlers.NewHRHandler(hrService),
		Facilities:      handlers.NewFacilityHandler(hrService),
		JobPostings:     handlers.NewJobPostingHandler(postingService),
		Bench:           handlers.NewBenchHandler(benchService),
		JobApplications: handlers.NewJobApplicationHandler(applicationService),
		Tools:           handlers.NewToolsHandler(),
		AuthMiddleware:  authMiddleware,
		SubmitLimiter:   httptransport.RateLimit(ratelimit.New(redis.Client, cfg.RateLimit), metrics, logger),
		Metrics:         metrics.Handler(),
	})

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	cancel()
	<-schedulerDone

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
}

// openHRStore uses the JSON snapshot when a path is configured and an
// in-memory copy of the sample data otherwise.
func openHRStore(cfg config.DataConfig, logger *zap.Logger) (repository.HRStore, error) {
	seed := repository.SeedDataset(time.Now().UTC())
	if cfg.FilePath == "" {
		logger.Warn("DATA_FILE not set; hr data is kept in memory")
		return repository.NewMemoryHRStore(seed), nil
	}
	return repository.NewFileHRStore(cfg.FilePath, seed, logger)
}

func seedJobPostings(ctx context.Context, repo repository.JobPostingRepository, logger *zap.Logger) {
	existing, err := repo.List(ctx, repository.JobPostingFilter{Limit: 1})
	if err != nil {
		logger.Warn("job posting seed check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, posting := range repository.SeedJobPostings() {
		p := posting
		if err := repo.Create(ctx, &p); err != nil {
			logger.Warn("seed job posting", zap.String("title", p.Title), zap.Error(err))
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
