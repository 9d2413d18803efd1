package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/checkpoints"
)

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints [file]",
	Short: "Generate learning checkpoints from notes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		notes, err := readNotes(cmd, args, cfg.Notes.MaxChars)
		if err != nil {
			return err
		}

		mode := cfg.Checkpoints.DescriptionMode
		if seeded, _ := cmd.Flags().GetBool("seeded"); seeded {
			mode = checkpoints.ModeSeeded
		}
		cps := checkpoints.NewGenerator(checkpoints.PickerFor(mode)).Generate(notes)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), cps)
		}
		out := cmd.OutOrStdout()
		for _, cp := range cps {
			fmt.Fprintf(out, "%d. %s\n   %s\n", cp.ID, cp.Title, cp.Description)
		}
		return nil
	},
}

func init() {
	checkpointsCmd.Flags().Bool("json", false, "Print JSON")
	checkpointsCmd.Flags().Bool("seeded", false, "Pick descriptions deterministically")
}
