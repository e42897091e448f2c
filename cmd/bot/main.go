package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hydrohomies/waterbot/internal/bot"
	"github.com/hydrohomies/waterbot/internal/config"
	"github.com/hydrohomies/waterbot/internal/health"
	"github.com/hydrohomies/waterbot/internal/storage/supabase"
	"github.com/hydrohomies/waterbot/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey)
	defer store.Close()
	slog.Info("Storage initialized", "url", cfg.SupabaseURL)

	session, err := bot.NewSession(cfg.DiscordToken, bot.NewHandler(store))
	if err != nil {
		slog.Error("Failed to create Discord session", "error", err)
		os.Exit(1)
	}

	if err := session.Open(); err != nil {
		slog.Error("Failed to connect to Discord", "error", err)
		os.Exit(1)
	}
	defer session.Close()
	slog.Info("Bot connected", "user", session.State.User.Username)

	// Liveness/metrics server for the hosting platform's probe.
	go func() {
		slog.Info("Health server starting", "port", cfg.HealthPort)
		if err := health.ListenAndServe(cfg.HealthPort); err != nil {
			slog.Error("Health server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down")
}
