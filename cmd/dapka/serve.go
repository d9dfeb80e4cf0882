package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dapka/internal/http/handlers/figures"
	"dapka/internal/http/handlers/records"
	statsh "dapka/internal/http/handlers/stats"
	"dapka/internal/http/router"
	"dapka/internal/lib/config"
	"dapka/internal/lib/sl"
	"dapka/internal/report/csvio"
	"dapka/internal/report/plot"
	repo "dapka/internal/repository"
	"dapka/internal/service/stats"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve statistics, records and figures of a written CSV over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	serveCmd.Flags().String("csv", "", "CSV file written by a previous run with --csv_write")
	serveCmd.Flags().String("address", "", "Listen address, overrides http_server.address")
	_ = serveCmd.MarkFlagRequired("csv")

	return serveCmd
}

func newServer(log *slog.Logger, cfg *config.Config, recordsRepo *repo.RecordsRepo) *http.Server {
	statsService := stats.NewStatsService(log, recordsRepo)
	renderer := plot.NewRenderer(log, plot.Options{
		Bins:   cfg.Report.Bins,
		Width:  vg.Length(cfg.Report.WidthInches) * vg.Inch,
		Height: vg.Length(cfg.Report.HeightInches) * vg.Inch,
	})

	h := router.Handlers{
		Stats:   statsh.NewStatsHandler(log, statsService),
		Records: records.NewRecordsHandler(log, recordsRepo),
		Figures: figures.NewFiguresHandler(log, recordsRepo, renderer),
	}

	return &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, h),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("address") {
		cfg.HTTPServer.Address, _ = cmd.Flags().GetString("address")
	}

	level, _ := cmd.Flags().GetString("log_level")
	log, err := newLogger(cfg.Env, level, os.Stdout)
	if err != nil {
		return err
	}

	csvPath, _ := cmd.Flags().GetString("csv")
	rows, err := csvio.Read(csvPath)
	if err != nil {
		log.Error("failed to read csv", sl.Err(err))
		return err
	}

	login, _ := cmd.Flags().GetString("AILogin")
	log.Info("loaded records",
		slog.String("path", csvPath),
		slog.Int("records", len(rows)),
		slog.String("login", login),
	)

	srv := newServer(log, cfg, repo.NewRecordsRepo(rows, login))

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(cmd.Context(), srv, log)
	return nil
}

func gracefulShutdown(ctx context.Context, srv *http.Server, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}
