package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"dapka/internal/client/ghcli"
	"dapka/internal/client/github"
	"dapka/internal/client/runner"
	"dapka/internal/lib/config"
	"dapka/internal/lib/sl"
	"dapka/internal/models"
	"dapka/internal/report/csvio"
	"dapka/internal/report/plot"
	repo "dapka/internal/repository"
	"dapka/internal/service"
	"dapka/internal/service/collect"
	"dapka/internal/service/instructions"
	"dapka/internal/service/stats"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

var defaultLogin = collect.KnownAILogins[0]

// loadConfig reads the config and lets explicitly set flags override it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source, _ = f.GetString("source")
	}
	if f.Changed("out_dir") {
		cfg.OutDir, _ = f.GetString("out_dir")
	}
	if f.Changed("metric") {
		cfg.Report.Metric, _ = f.GetString("metric")
	}
	if f.Changed("funcs") {
		cfg.Report.Funcs, _ = f.GetStringSlice("funcs")
	}
	if f.Changed("non_ai_multiplier") {
		cfg.Report.NonAIMultiplier, _ = f.GetInt("non_ai_multiplier")
	}
	if f.Changed("instructions") {
		cfg.InstructionsPath, _ = f.GetString("instructions")
	}

	return cfg, nil
}

func collectOptions(cmd *cobra.Command, cfg *config.Config) collect.Options {
	f := cmd.Flags()
	owner, _ := f.GetString("owner")
	repoName, _ := f.GetString("repo")
	limit, _ := f.GetInt("limit")
	status, _ := f.GetString("status")
	login, _ := f.GetString("AILogin")

	return collect.Options{
		Owner:           owner,
		Repo:            repoName,
		State:           status,
		Limit:           limit,
		Login:           login,
		NonAIMultiplier: cfg.Report.NonAIMultiplier,
	}
}

func newSource(ctx context.Context, log *slog.Logger, cfg *config.Config) (service.PullRequestSource, error) {
	switch cfg.Source {
	case config.SourceGH:
		return ghcli.New(log, runner.New(log, cfg.CommandTimeout), cfg.GHBinary), nil
	case config.SourceAPI:
		if cfg.GitHubToken == "" {
			log.Warn("GITHUB_TOKEN is not set, using anonymous API requests")
		}
		return github.New(ctx, log, cfg.GitHubToken, cfg.CommandTimeout), nil
	}
	return nil, fmt.Errorf("unknown source %q, expected %q or %q", cfg.Source, config.SourceGH, config.SourceAPI)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := collectOptions(cmd, cfg)
	if err := opts.Validate(); err != nil {
		return err
	}
	if !stats.IsMetric(cfg.Report.Metric) {
		return fmt.Errorf("%w: %q", stats.ErrUnknownMetric, cfg.Report.Metric)
	}
	transforms, err := plot.ParseTransforms(cfg.Report.Funcs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	useStdout, _ := cmd.Flags().GetBool("use_stdout")
	logOut, closeLog, err := openLogOutput(useStdout, cfg.OutDir)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	level, _ := cmd.Flags().GetString("log_level")
	log, err := newLogger(cfg.Env, level, logOut)
	if err != nil {
		return err
	}

	log.Info("starting AI review analysis",
		slog.String("env", cfg.Env),
		slog.String("source", cfg.Source),
		slog.String("repo", opts.Owner+"/"+opts.Repo),
		slog.String("login", opts.Login),
		slog.String("state", opts.State),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := newSource(ctx, log, cfg)
	if err != nil {
		return err
	}

	result, err := collect.NewCollectService(log, source).Collect(ctx, opts)
	if err != nil {
		log.Error("failed to collect pull requests", sl.Err(err))
		return err
	}

	instructionsPresent := loadInstructions(log, cfg.InstructionsPath)

	savefig, _ := cmd.Flags().GetBool("savefig")
	csvWrite, _ := cmd.Flags().GetBool("csv_write")
	return report(ctx, log, cmd.OutOrStdout(), reportParams{
		cfg:                 cfg,
		opts:                opts,
		records:             result.Records,
		transforms:          transforms,
		csvWrite:            csvWrite,
		savefig:             savefig,
		instructionsPresent: instructionsPresent,
	})
}

func loadInstructions(log *slog.Logger, path string) bool {
	_, err := instructions.Load(log, path)
	switch {
	case err == nil:
		return true
	case errors.Is(err, instructions.ErrNotFound):
		return false
	default:
		log.Error("failed to read custom instructions", sl.Err(err))
		return false
	}
}

type reportParams struct {
	cfg                 *config.Config
	opts                collect.Options
	records             []models.Record
	transforms          []plot.Transform
	csvWrite            bool
	savefig             bool
	instructionsPresent bool
}

// report writes the CSV, prints the YAML summary and renders the figures.
func report(ctx context.Context, log *slog.Logger, out io.Writer, p reportParams) error {
	if p.csvWrite {
		path := filepath.Join(p.cfg.OutDir, csvio.DefaultFileName)
		if err := csvio.Write(log, path, p.records); err != nil {
			log.Error("failed to write csv", sl.Err(err))
			return err
		}
	}

	recordsRepo := repo.NewRecordsRepo(p.records, p.opts.Login)
	summary, err := stats.NewStatsService(log, recordsRepo).GetStatistics(ctx, p.cfg.Report.Metric)
	if err != nil {
		return err
	}
	summary.Owner, summary.Repo = p.opts.Owner, p.opts.Repo
	summary.InstructionsPresent = p.instructionsPresent

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if len(p.records) == 0 {
		log.Warn("no records to plot")
		return nil
	}

	renderer := plot.NewRenderer(log, plot.Options{
		Bins:   p.cfg.Report.Bins,
		Width:  vg.Length(p.cfg.Report.WidthInches) * vg.Inch,
		Height: vg.Length(p.cfg.Report.HeightInches) * vg.Inch,
		OutDir: p.cfg.OutDir,
	})

	_, err = renderer.Histograms(
		p.records,
		models.ColAuthorLogin,
		p.opts.Login,
		p.cfg.Report.Metric,
		p.transforms,
		p.savefig,
		out,
	)
	if err != nil {
		log.Error("failed to plot histograms", sl.Err(err))
		return err
	}

	if p.savefig {
		if _, err := renderer.SaveScatter(p.records, models.ColAuthorLogin, p.opts.Login, p.cfg.Report.Metric); err != nil {
			log.Error("failed to plot scatterplot", sl.Err(err))
			return err
		}
	}

	return nil
}
