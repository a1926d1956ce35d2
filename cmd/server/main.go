package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"onboard-gateway/internal/onboarding/draft"
	"onboard-gateway/internal/onboarding/forms"
	"onboard-gateway/internal/onboarding/handler"
	"onboard-gateway/internal/onboarding/submit"
	"onboard-gateway/internal/onboarding/wizard"
	"onboard-gateway/internal/platform/config"
	"onboard-gateway/internal/platform/httpserver"
	"onboard-gateway/internal/platform/logger"
	"onboard-gateway/internal/platform/metrics"
	"onboard-gateway/internal/platform/postgres"
	"onboard-gateway/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the onboarding packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level)
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Draft store: Redis when configured, process-local otherwise.
	var drafts draft.Store
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		drafts = draft.NewRedisStore(redisClient, log, cfg.Onboarding.DraftTTL)
	} else {
		log.Warn("redis not configured, drafts will not survive restarts")
		drafts = draft.NewInMemoryStore()
	}

	// Forms store: Postgres when configured, process-local otherwise.
	var formsStore forms.Store
	if cfg.Database.DSN != "" {
		if err := postgres.RunMigrations(ctx, cfg.Database.DSN); err != nil {
			log.Error("migrations failed", "error", err.Error())
			os.Exit(1)
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			log.Error("database connection failed", "error", err.Error())
			os.Exit(1)
		}
		defer pool.Close()
		formsStore = forms.NewPostgres(pool)
	} else {
		log.Warn("database not configured, submitted forms will not survive restarts")
		formsStore = forms.NewInMemoryStore()
	}

	coordinator := submit.NewCoordinator(formsStore, log, m)
	machine := wizard.NewMachine(drafts, coordinator, log, m)

	router := chi.NewRouter()
	handler.New(machine, log, m).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, `{"status":"degraded"}`, http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	srv := httpserver.New(cfg.Server, router)

	log.Info("starting onboard-gateway", "addr", cfg.Server.Addr())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
