package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"predictive-maintenance-backend/config"
	"predictive-maintenance-backend/internal/api"
	"predictive-maintenance-backend/internal/feed"
	"predictive-maintenance-backend/internal/fixtures"
	"predictive-maintenance-backend/internal/logger"
	"predictive-maintenance-backend/internal/service"
	"predictive-maintenance-backend/internal/store"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "pdm-mock-backend")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("configuration loaded", zap.String("path", configPath))

	// All state lives in one store instance for the lifetime of the process.
	appStore := store.New(fixtures.Load())
	log.Info("in-memory store seeded")

	latency := service.Latency{}
	if cfg.Service.LatencyEnabled {
		latency = service.Latency{
			Light:  time.Duration(cfg.Service.LatencyLightMS) * time.Millisecond,
			Medium: time.Duration(cfg.Service.LatencyMedMS) * time.Millisecond,
			Heavy:  time.Duration(cfg.Service.LatencyHeavyMS) * time.Millisecond,
		}
	}
	svc := service.New(appStore, latency, log)

	simulator := feed.NewSimulator(cfg.Feed.Tick, cfg.Feed.AlertProbability, trackedMachines(appStore, cfg.Feed.TrackedMachines), log)
	simulator.On(feed.EventMachineUpdate, func(payload any) {
		log.Debug("feed event", zap.String("event", feed.EventMachineUpdate), zap.Any("payload", payload))
	})
	simulator.On(feed.EventNewAlert, func(payload any) {
		log.Info("feed event", zap.String("event", feed.EventNewAlert), zap.Any("payload", payload))
	})
	if cfg.Feed.Enabled {
		simulator.Connect()
	}

	router := api.NewRouter(svc, cfg, log)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutdown signal received, stopping services")

	simulator.Disconnect()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server Shutdown", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}

// trackedMachines picks the first n seeded machines for the realtime feed,
// using their current sensor readings as jitter baselines.
func trackedMachines(st *store.Store, n int) []feed.TrackedMachine {
	machines := st.Machines()
	if n > len(machines) {
		n = len(machines)
	}
	tracked := make([]feed.TrackedMachine, 0, n)
	for _, m := range machines[:n] {
		tracked = append(tracked, feed.TrackedMachine{
			ID:        m.ID,
			AssetID:   m.AssetID,
			Name:      m.Name,
			Baselines: m.Sensors,
		})
	}
	return tracked
}
