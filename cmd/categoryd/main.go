package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/categoryd/pkg/clientip"
	"github.com/dmitrymomot/categoryd/pkg/config"
	"github.com/dmitrymomot/categoryd/pkg/environment"
	"github.com/dmitrymomot/categoryd/pkg/httpserver"
	"github.com/dmitrymomot/categoryd/pkg/logger"
	"github.com/dmitrymomot/categoryd/pkg/lookup"
	"github.com/dmitrymomot/categoryd/pkg/metrics"
	"github.com/dmitrymomot/categoryd/pkg/redis"
	"github.com/dmitrymomot/categoryd/pkg/requestid"
)

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
			lookup.ConnLoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(app, log); err != nil {
		log.Error("categoryd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(app appConfig, log *slog.Logger) error {
	var (
		redisCfg redis.Config
		httpCfg  httpserver.Config
	)
	if err := config.Load(&redisCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	env := environment.Parse(app.Env)
	ctx, stop := signal.NotifyContext(environment.WithContext(context.Background(), env), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	store := redis.NewStore(client)
	defer func() {
		if err := store.Close(); err != nil {
			log.WarnContext(ctx, "close store", logger.Error(err))
		}
	}()
	log.InfoContext(ctx, "store connected", logger.Addr(client.Options().Addr))

	var m *metrics.Metrics
	if app.AdminAddr != "" {
		m = metrics.New()
	}

	svc := lookup.New(store,
		lookup.WithLogger(log.With(logger.Component("lookup"))),
		lookup.WithMetrics(m),
		lookup.WithLookupTimeout(app.LookupTimeout),
	)

	public := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log.With(logger.Component("http"))),
		httpserver.WithConnContext(lookup.ConnContext),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The public listener owns the process lifetime.
		defer stop()
		return public.Run(gctx, svc.Handler(
			clientip.Middleware,
			environment.Middleware(env),
		))
	})

	if app.AdminAddr != "" {
		admin := httpserver.New(
			httpserver.WithAddr(app.AdminAddr),
			httpserver.WithLogger(log.With(logger.Component("admin"))),
		)
		g.Go(func() error {
			return admin.Run(gctx, adminRouter(log, env, store, m))
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func adminRouter(log *slog.Logger, env environment.Environment, store *redis.Store, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(environment.Middleware(env))
	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", httpserver.HealthCheckHandler(log, redis.Healthcheck(store)))
	return r
}
