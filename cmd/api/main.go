package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"agrimart/docs"
	"agrimart/internal/auth"
	"agrimart/internal/config"
	"agrimart/internal/database"
	"agrimart/internal/database/migration"
	handlers "agrimart/internal/http/handler"
	"agrimart/internal/http/middleware"
	"agrimart/internal/logger"
	"agrimart/internal/otel"
	"agrimart/internal/repository/postgres"
	"agrimart/internal/service"
	"agrimart/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title						Agrimart API
// @version					1.0
// @description				Marketplace connecting farmers selling produce with buyers.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	boot := logger.Default()

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("config_load_failed")
	}
	log := logger.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server_failed")
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) error {
	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracing_shutdown_failed")
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		return err
	}

	// Images are optional; without MinIO settings uploads answer 503.
	var store storage.ObjectStore
	if cfg.MinIO.Enabled() {
		s, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
		store = s
	} else {
		log.Warn().Msg("object_storage_disabled")
	}

	svcs := service.New(service.Deps{
		Repos:         postgres.NewRepositories(db),
		Tokens:        auth.NewTokens(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL()),
		Store:         store,
		PresignExpiry: time.Duration(cfg.MinIO.PresignExpiry) * time.Second,
		Logger:        log,
	})

	limiter := middleware.NewRateLimiter(cfg.Auth.LoginRPS, cfg.Auth.LoginBurst)
	app, err := newApp(db, svcs, limiter, log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		limiter.RunCleanup(gctx, time.Minute, 10*time.Minute)
		return nil
	})
	g.Go(func() error {
		addr := ":" + cfg.Server.Port
		log.Info().Str("addr", addr).Msg("server_listening")
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("server_shutting_down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newApp(db *sql.DB, svcs *service.Services, limiter *middleware.RateLimiter, log zerolog.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(storage.MaxImageSize) + 1<<20,
	})

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(otelhttp.NewHandler(promhttp.Handler(), "metrics")))

	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, db, svcs, limiter)
	return app, nil
}
