package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/config"
	"github.com/abhisek/feynman/internal/logging"
	"github.com/abhisek/feynman/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "feynman",
	Short: "Learn by explaining simply",
	Long: "Feynman turns your notes into learning checkpoints, explains the ones you\n" +
		"cannot yet explain, and scores how well you can teach them back.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FEYNMAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/feynman/config.yaml)")

	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(checkpointsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newLogger builds a logger for cfg. The TUI passes a file so logs do not
// corrupt the screen; subcommands log to stderr.
func newLogger(cfg config.Config, file string) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Mode:  cfg.Log.Mode,
		Level: cfg.Log.Level,
		File:  file,
	})
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file or FEYNMAN_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.DB.Path
	}
	if p == "" {
		def, err := config.DefaultDBPath()
		if err != nil {
			return "", err
		}
		p = def
	}
	if err := store.EnsureDir(p); err != nil {
		return "", fmt.Errorf("create db dir: %w", err)
	}
	return p, nil
}

// openStore opens the preference store at the resolved path.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.OpenContext(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
