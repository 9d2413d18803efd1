package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/feedback"
	"github.com/abhisek/feynman/internal/mastery"
)

var scoreCmd = &cobra.Command{
	Use:   "score <model.json|model.yaml>",
	Short: "Score how well answers meet a feedback model's criteria",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := feedback.FormatFromPath(args[0])
		if f, _ := cmd.Flags().GetString("format"); f != "" {
			parsed, err := feedback.ParseFormat(f)
			if err != nil {
				return err
			}
			format = parsed
		}

		m, err := loadModelFile(args[0], format)
		if err != nil {
			return err
		}
		report := mastery.Score(m)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}
		out := cmd.OutOrStdout()
		for _, cp := range report.PerCheckpoint {
			desc := m.Checkpoints[cp.Index].Description
			fmt.Fprintf(out, "%d. %-10s %3d%%  %s\n", cp.Index+1, cp.Level, cp.Score, desc)
		}
		fmt.Fprintf(out, "Overall: %s %d%%\n", report.OverallLevel, report.OverallScore)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("format", "", "Model format: json or yaml (default from file extension)")
	scoreCmd.Flags().Bool("json", false, "Print the report as JSON")
}

func loadModelFile(path string, format feedback.Format) (feedback.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return feedback.Model{}, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	m, err := feedback.Load(f, format)
	if err != nil {
		return feedback.Model{}, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

// saveModelFile writes m to path atomically.
func saveModelFile(path string, m feedback.Model) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".feynman-model-*")
	if err != nil {
		return fmt.Errorf("create temp model: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := feedback.Encode(tmp, m, feedback.FormatFromPath(path)); err != nil {
		tmp.Close()
		return fmt.Errorf("encode model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp model: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace model: %w", err)
	}
	return nil
}
