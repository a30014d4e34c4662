// Package root contains the root command for the application
package root

import (
	"bankdash/internal/bankparser"
	"bankdash/internal/categorizer"
	"bankdash/internal/common"
	"bankdash/internal/config"
	"bankdash/internal/fetcher"
	"bankdash/internal/report"
	"bankdash/internal/rulestore"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankdash",
		Short: "Categorize bank transaction exports and summarize spending by category.",
		Long: `bankdash loads a bank transaction export, assigns each transaction to a
spending category using a persistent keyword ruleset, learns new rules
from manual corrections, and reports per-category totals.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankdash!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to all packages
			rulestore.SetLogger(Log)
			categorizer.SetLogger(Log)
			report.SetLogger(Log)
			bankparser.SetLogger(Log)
			fetcher.SetLogger(Log)
			common.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}

	// RulesFile overrides the configured rules file when set
	RulesFile string
)

// NewStore opens the rule store for this invocation, preferring the
// --rules flag over the configured path.
func NewStore() *rulestore.Store {
	path := RulesFile
	if path == "" && Cfg != nil {
		path = Cfg.Rules.File
	}
	if path == "" {
		path = "categories.json"
	}
	return rulestore.NewStore(path)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&RulesFile, "rules", "r", "", "Rules file (defaults to rules.file from config)")
}
