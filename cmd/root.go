package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dparikh/prepdrill/internal/app"
	"github.com/dparikh/prepdrill/internal/config"
	"github.com/dparikh/prepdrill/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "prepdrill",
	Short: "Adaptive practice-question sequencing",
	Long: "Prepdrill estimates a learner's proficiency per topic from their answer\n" +
		"history and builds practice sequences that match and stretch it.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(sequenceCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildApp loads config, builds the logger, and wires the application.
// The caller owns app.Close and logger.Sync.
func buildApp(cmd *cobra.Command, opts app.Options) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if opts.DBPath == "" {
		opts.DBPath, _ = cmd.Flags().GetString("db")
	}

	a, err := app.New(cfg, logger, opts)
	if err != nil {
		logger.Sync()
		return nil, err
	}
	return a, nil
}

func closeApp(a *app.App) {
	a.Logger.Sync()
	if err := a.Close(); err != nil {
		fmt.Println("close store:", err)
	}
}

// loadConfig is buildApp without the store, for commands that only need
// configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	return config.Load(cfgPath)
}

// newLogger builds a logger from config plus the --log-level override.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	return logging.New(level, cfg.Logging.Format)
}
