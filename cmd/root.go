package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilleval/internal/config"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skilleval",
	Short: "Adaptive skill evaluator",
	Long: "skilleval generates 30-question, three-tier assessments with a generative backend,\n" +
		"grades submissions and recommends remediation.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./skilleval.yaml, $XDG_CONFIG_HOME/skilleval, /etc/skilleval)")
	rootCmd.PersistentFlags().String("db", "", "Database DSN or SQLite file path (overrides database.dsn)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration with the --config and --db overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	dsn, _ := cmd.Flags().GetString("db")
	return config.Load(config.Options{File: file, DSN: dsn})
}

// openStore opens the configured database, creating the SQLite directory
// when needed.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Database.Driver == store.DriverSQLite {
		if err := store.EnsureDir(cfg.Database.DSN); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	s, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
