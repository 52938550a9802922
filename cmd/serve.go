package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"task-manager.com/task-manager/internal/clock"
	config "task-manager.com/task-manager/internal/configs"
	"task-manager.com/task-manager/internal/flash"
	httpapi "task-manager.com/task-manager/internal/http"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
	"task-manager.com/task-manager/internal/telemetry"
)

const flashKeyPrefix = "task-manager:flash:"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Serves the task list and the add, edit and delete forms",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		providers, err := telemetry.Setup(ctx, telemetry.Options{
			ServiceName:  cfg.ServiceName,
			Environment:  cfg.Environment,
			OTLPEndpoint: cfg.OTLPEndpoint,
		})
		if err != nil {
			return err
		}
		logger := providers.Logger
		logger.Info("starting application",
			slog.String("service", cfg.ServiceName),
			slog.String("environment", cfg.Environment),
			slog.String("addr", cfg.AppURL),
		)

		database := config.New(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		taskService := services.NewTaskService(
			taskRepo,
			clock.NewSystem(cfg.Location()),
			services.WithCompletionStatus(cfg.CompletionStatus),
		)

		flashStore, closeFlash, err := newFlashStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeFlash()

		metrics, err := telemetry.NewMetrics(otel.Meter(cfg.ServiceName), taskRepo.Count)
		if err != nil {
			return err
		}

		renderer, err := httpapi.NewRenderer()
		if err != nil {
			return err
		}

		e := echo.New()
		e.HideBanner = true
		e.Renderer = renderer
		e.Use(echomw.Recover())
		e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
		e.Use(middleware.RequestLogger(logger))
		e.Use(middleware.Metrics(metrics))

		flasher := httpapi.NewFlasher(flashStore, cfg.FlashTTL(), logger)
		httpapi.Register(e, httpapi.NewHandler(taskService, flasher, logger), cfg.RateLimit)

		server := &http.Server{
			Addr:    cfg.AppURL,
			Handler: otelhttp.NewHandler(e, "http-server"),
		}

		go func() {
			logger.Info("HTTP server listening", slog.String("addr", cfg.AppURL))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", slog.Any("error", err))
		}
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", slog.Any("error", err))
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newFlashStore picks redis when REDIS_ADDR is set and a process-local
// store otherwise.
func newFlashStore(cfg config.Config, logger *slog.Logger) (flash.Store, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, keeping flash messages in memory")
		return flash.NewMemoryStore(cfg.FlashTTL()), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	return flash.NewRedisStore(redisClient, flashKeyPrefix, cfg.FlashTTL()), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
