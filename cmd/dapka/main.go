package main

import (
	"os"
	"strings"

	"dapka/internal/service/collect"

	"github.com/spf13/cobra"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

// defaultNonAIMultiplier matches the env-default of report.non_ai_multiplier.
const defaultNonAIMultiplier = 2

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dapka",
		Short: "Compare pull requests reviewed by an AI reviewer against the rest",
		Long: "Fetch pull requests of a GitHub repository, split them by whether the given AI " +
			"reviewer left a review, and report time to merge and change size for both groups.",
		SilenceUsage: true,
		RunE:         runCollect,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Configuration file (YAML), falls back to CONFIG_PATH and the environment")
	pf.String("log_level", "info", "Log level: debug, info, warn, error")
	pf.String("AILogin", defaultLogin, "AI reviewer login: "+strings.Join(collect.KnownAILogins, ", "))

	f := rootCmd.Flags()
	f.String("owner", "", "Repository owner")
	f.String("repo", "", "Repository name")
	f.Int("limit", 50000, "Maximum number of pull requests to fetch")
	f.String("status", "all", "Pull request state: open, closed, all, merged")
	f.Bool("csv_write", false, "Write the record table to <out_dir>/pr_reviews.csv")
	f.Bool("use_stdout", false, "Log to stdout instead of <out_dir>/dapka.log")
	f.String("source", "", "Data source: gh (GitHub CLI) or api (GitHub REST API)")
	f.String("out_dir", "", "Directory for the CSV, figures and log file")
	f.Bool("savefig", false, "Save figures as PNG files instead of printing text histograms")
	f.String("metric", "", "Metric column to compare")
	f.StringSlice("funcs", nil, "Transforms applied before plotting: identity, log, log1p, sqrt")
	f.Int("non_ai_multiplier", defaultNonAIMultiplier, "Sample at most this many non-AI pull requests per AI-reviewed one, <= 0 keeps all (overrides report.non_ai_multiplier)")
	f.String("instructions", "", "Path to the AI reviewer custom instructions file")
	_ = rootCmd.MarkFlagRequired("owner")
	_ = rootCmd.MarkFlagRequired("repo")

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
