// The bridge daemon relays intents arriving over TCP to the serial-attached
// controller.
//
// Usage:
//
//	bridge -serial-port /dev/ttyACM0 -baud 115200 -host 127.0.0.1 -port 8765
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"zari/internal/infra/bridge"
	"zari/internal/infra/serialport"
)

func main() {
	serialPort := flag.String("serial-port", "", "serial device, e.g. /dev/ttyACM0 or COM3")
	baud := flag.Int("baud", 115200, "serial baud rate")
	host := flag.String("host", "127.0.0.1", "listen host")
	port := flag.Int("port", 8765, "listen port")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	godotenv.Load()

	logger := setupLogger(*logLevel)

	if *serialPort == "" {
		logger.Error("missing required -serial-port flag")
		os.Exit(1)
	}

	// The hardware channel is opened exactly once; if it cannot be opened
	// the process has nothing to relay to and exits.
	hw, err := serialport.Open(*serialPort, *baud)
	if err != nil {
		logger.Error("opening hardware channel", "error", err)
		os.Exit(1)
	}
	defer hw.Close()

	logger.Info("hardware channel open", "device", *serialPort, "baud", *baud)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	server := bridge.NewServer(hw, logger)
	addr := fmt.Sprintf("%s:%d", *host, *port)

	if err := server.ListenAndServe(ctx, addr); err != nil && err != context.Canceled {
		logger.Error("bridge error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
