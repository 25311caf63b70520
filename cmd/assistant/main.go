package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"zari/config"
	"zari/internal/application"
	"zari/internal/infra/bridge"
	"zari/internal/infra/pushover"
	"zari/internal/infra/sim"
	"zari/internal/infra/transcript"
	"zari/internal/nlu"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	envFile := flag.String("env", ".env", "path to optional env file")
	flag.Parse()

	godotenv.Load(*envFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	source := createTranscriptSource(cfg.Transcript, logger)
	parser := nlu.NewParser(nlu.DefaultLexicon())
	executor := createExecutor(cfg, logger)

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey)
	} else {
		notifier = &application.NoopNotifier{}
	}

	assistant := application.NewAssistant(source, parser, executor, notifier, logger)

	logger.Info("starting smart home assistant",
		"transcript_source", cfg.Transcript.Source,
		"mode", cfg.Mode,
	)

	if err := assistant.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("assistant error", "error", err)
		os.Exit(1)
	}
}

func createTranscriptSource(cfg config.TranscriptConfig, logger *slog.Logger) application.TranscriptSource {
	switch cfg.Source {
	case "http":
		return transcript.NewHTTPSource(cfg.HTTPAddr, cfg.AuthToken, logger)
	case "file":
		return transcript.NewFileSource(cfg.FileDir)
	default:
		logger.Warn("unknown transcript source, using http", "source", cfg.Source)
		return transcript.NewHTTPSource(cfg.HTTPAddr, cfg.AuthToken, logger)
	}
}

func createExecutor(cfg *config.Config, logger *slog.Logger) application.CommandExecutor {
	switch cfg.Mode {
	case "hardware":
		client := bridge.NewClient(cfg.BridgeAddr(), cfg.BridgeDialTimeout())
		return bridge.NewExecutor(client, logger)
	case "simulator":
		return sim.NewExecutor(sim.NewStore(), logger)
	default:
		logger.Warn("unknown mode, using simulator", "mode", cfg.Mode)
		return sim.NewExecutor(sim.NewStore(), logger)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
