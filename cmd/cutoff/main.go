package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/config"
	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/cutoff"
	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/metrics"
)

// cutoffctl loads a cutoff rule file, keeps it hot-reloaded, and dumps
// the booking/cancellation decision for every meal type for today and
// tomorrow. Useful for verifying a rule file before rolling it out.
func main() {
	_ = godotenv.Load()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfgPath := os.Getenv("CUTOFF_CONFIG_PATH")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	manager := cutoff.NewManager(cfg.Cutoff.Booking, cfg.Cutoff.Cancellation)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Reload.Enabled {
		interval := time.Duration(cfg.Reload.IntervalSeconds) * time.Second
		if err := config.Watch(ctx, cfgPath, interval, func(updated *config.Config) {
			if updated == nil {
				return
			}
			manager.SetConfig(updated.Cutoff.Booking)
			manager.SetCancellationConfig(updated.Cutoff.Cancellation)
			metrics.IncConfigReload()
			logger.Info().Time("reloaded_at", time.Now()).Msg("cutoff config reloaded")
		}); err != nil {
			logger.Error().Err(err).Msg("cutoff config watch failed")
		}
	}

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Monitoring.HealthCheckPort > 0 {
		go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, &logger)
	}

	dumpStatuses(manager, &logger)

	if cfg.Reload.Enabled || cfg.Monitoring.PrometheusEnabled || cfg.Monitoring.HealthCheckPort > 0 {
		logger.Info().Msg("cutoff watcher started")
		<-ctx.Done()
	}
}

// dumpStatuses logs the decision for every meal type in the today and
// tomorrow windows.
func dumpStatuses(manager *cutoff.Manager, logger *zerolog.Logger) {
	now := time.Now()
	days := map[string]time.Time{
		"today":    now,
		"tomorrow": now.AddDate(0, 0, 1),
	}

	for label, day := range days {
		for _, mealType := range meal.Types {
			booking := manager.BookingStatus(mealType, day)
			metrics.IncEvaluation("booking", booking.Allowed)

			event := logger.Info().
				Str("window", label).
				Str("meal", string(mealType)).
				Bool("allowed", booking.Allowed).
				Str("cutoff", booking.CutoffTime)
			if booking.Reason != "" {
				event = event.Str("reason", booking.Reason)
			}
			event.Msg("booking status")

			cancellation := manager.CancellationStatus(mealType, day)
			metrics.IncEvaluation("cancellation", cancellation.Allowed)

			event = logger.Info().
				Str("window", label).
				Str("meal", string(mealType)).
				Bool("allowed", cancellation.Allowed).
				Str("cutoff", cancellation.CutoffTime)
			if cancellation.Reason != "" {
				event = event.Str("reason", cancellation.Reason)
			}
			event.Msg("cancellation status")
		}
	}
}

func startHealthServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
