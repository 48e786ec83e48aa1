package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/app"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/config"
	"github.com/chrisyarbrough/SharpShuffleBag/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.MustLoad()
	cleanup := setupLogger(cfg)
	defer cleanup()

	application, err := app.New(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		logging.LogError(ctx, "failed to init app", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logging.LogError(ctx, "application stopped with error", err)
		os.Exit(1)
	}
}

// setupLogger настраивает структурированное логирование на основе конфигурации.
// Консольный пример печатает в stdout, поэтому для него логи лучше направить в stderr или файл.
// Возвращает функцию для закрытия файлового дескриптора (если используется файл).
func setupLogger(cfg config.Config) func() {
	output := strings.ToLower(cfg.Logging.Output)
	var writer io.Writer
	var closer io.Closer

	// Определяем куда писать логи: stdout, stderr или файл
	switch output {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		// Если указан файл, создаём директорию и открываем файл для записи
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.Output), 0o755); err != nil {
			log.Fatalf("failed to create log directory: %v", err)
		}
		f, err := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		writer = f
		closer = f
	}

	handler := slog.Handler(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
	}))
	handler = logging.NewLoggerImpl(handler)
	slog.SetDefault(slog.New(handler))

	return func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
