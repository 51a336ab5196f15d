package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialpulse/internal/adapters/httpapi"
	memoryadapter "socialpulse/internal/adapters/memory"
	redisadapter "socialpulse/internal/adapters/redis"
	"socialpulse/internal/adapters/remote"
	"socialpulse/internal/config"
	"socialpulse/internal/core/analytics"
	analyticsapp "socialpulse/internal/core/analytics/service"
	userPort "socialpulse/internal/ports/user"
	"socialpulse/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envLoaded := config.Init() // بارگذاری تنظیمات از .env

	settings, settingsErr := config.Load()
	if err := config.InitLogger(settings); err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer config.Logger.Sync() // flush buffer

	if !envLoaded {
		config.Logger.Info("No .env file found, using system environment variables")
	}
	if settingsErr != nil {
		config.Logger.Fatal("Invalid configuration", zap.Error(settingsErr))
	}

	config.CheckAccessToken(settings.RemoteAccessToken, time.Now(), config.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// اتصال به Redis (اختیاری)
	if err := config.InitRedis(ctx, settings); err != nil {
		config.Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	var snapshotRepo userPort.SnapshotRepository // آداپتر خروجی
	if config.RedisClient != nil {
		snapshotRepo = redisadapter.NewUsersSnapshotRepositoryRedis(config.RedisClient, settings.UsersSnapshotTTL)
	} else {
		snapshotRepo = memoryadapter.NewUsersSnapshotRepositoryMemory(settings.UsersSnapshotTTL, time.Now)
	}
	remoteClient := remote.NewClient(settings.RemoteBaseURL, settings.RemoteAccessToken, settings.RemoteTimeout) // آداپتر خروجی
	store := analytics.NewStore(settings.DedupePosts)
	aggregatorSvc := analyticsapp.NewAggregatorService(remoteClient, snapshotRepo, store, config.Logger, analyticsapp.Options{
		SampleSize:  settings.LightRefreshSample,
		Concurrency: settings.FetchConcurrency,
	}) // یوزکیس/سرویس

	if settings.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpapi.SetupRoutes(aggregatorSvc, aggregatorSvc, aggregatorSvc, config.Logger, settings.CORSAllowedOrigins) // تزریق یوزکیس به آداپتر ورودی
	// -------------------------------------------

	refreshWorker := workers.NewRefreshWorker(aggregatorSvc, settings.FullRefreshInterval, settings.LightRefreshInterval, config.Logger)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		refreshWorker.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			config.Logger.Error("Error shutting down HTTP server", zap.Error(err))
		}
	}()

	config.Logger.Info("App is running...", zap.String("port", settings.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}

	stop()
	<-workerDone
	config.Logger.Info("Server stopped")
}

// closeResources بستن اتصال Redis
func closeResources(logger *zap.Logger) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}
}
