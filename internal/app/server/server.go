package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	employeesdomain "tippool/internal/domain/employees"
	reportsdomain "tippool/internal/domain/reports"
	statsdomain "tippool/internal/domain/stats"
	tipsdomain "tippool/internal/domain/tips"
	"tippool/internal/platform/config"
	"tippool/internal/platform/db"
	"tippool/internal/platform/metrics"
	employeeshandler "tippool/internal/transport/http/handlers/employees"
	reportshandler "tippool/internal/transport/http/handlers/reports"
	statshandler "tippool/internal/transport/http/handlers/stats"
	tipshandler "tippool/internal/transport/http/handlers/tips"
	"tippool/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			pool.Close()
			return nil, err
		}
	}

	app := &App{Config: cfg, Pool: pool}
	app.Router = buildRouter(cfg, pool)
	return app, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

func buildRouter(cfg config.Config, pool *pgxpool.Pool) http.Handler {
	collector := metrics.New()
	var calculationsCounter prometheus.Counter
	if cfg.MetricsEnabled {
		calculationsCounter = collector.CalculationsRun
	}

	employeeService := employeesdomain.NewService(employeesdomain.NewStore(pool))
	tipStore := tipsdomain.NewStore(pool)
	tipService := tipsdomain.NewService(tipStore, cfg.DefaultCurrency, calculationsCounter)
	statsService := statsdomain.NewService(tipStore)
	reportService := reportsdomain.NewService(tipStore, cfg.ReportDir)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		employeeshandler.NewHandler(employeeService).RegisterRoutes(r)
		tipshandler.NewHandler(tipService).RegisterRoutes(r)
		statshandler.NewHandler(statsService).RegisterRoutes(r)
		reportshandler.NewHandler(reportService).RegisterRoutes(r)
	})

	return router
}
