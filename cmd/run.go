package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/app"
	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/config"
	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/session"
)

func init() {
	rootCmd.Flags().String("model", "", "Feedback model file (JSON or YAML) to load and save")
	rootCmd.Flags().Bool("no-welcome", false, "Skip the welcome animation")
}

// runApp loads configuration, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	logger, err := newLogger(cfg, logPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sess := session.New(checkpoints.NewGenerator(checkpoints.PickerFor(cfg.Checkpoints.DescriptionMode)))
	sess.MaxNotesChars = cfg.Notes.MaxChars

	skipWelcome, _ := cmd.Flags().GetBool("no-welcome")
	opts := app.Options{
		Session:         sess,
		Logger:          logger,
		Prefs:           st.PrefsRepo(),
		ProcessingDelay: cfg.Notes.ProcessingDelay,
		SkipWelcome:     skipWelcome,
	}

	if modelPath, _ := cmd.Flags().GetString("model"); modelPath != "" {
		m, err := loadModelFile(modelPath, feedback.FormatFromPath(modelPath))
		switch {
		case err == nil:
			sess.LoadFeedback(m)
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("model file not found, starting from default", "path", modelPath)
		default:
			return fmt.Errorf("load model: %w", err)
		}
		opts.SaveModel = func(m feedback.Model) error {
			return saveModelFile(modelPath, m)
		}
	}

	return app.Run(ctx, opts)
}
