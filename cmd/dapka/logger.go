package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"dapka/internal/lib/sl"
)

const logFileName = "dapka.log"

func setupLogger(env string, level slog.Level, w io.Writer) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		)
	}
	return log
}

// openLogOutput returns stdout, or the log file in outDir opened for appending.
func openLogOutput(useStdout bool, outDir string) (io.Writer, func() error, error) {
	if useStdout {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.OpenFile(filepath.Join(outDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func newLogger(env, level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := sl.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return setupLogger(env, lvl, w), nil
}
