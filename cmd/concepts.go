package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/concepts"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts [file]",
	Short: "List the key concepts found in notes",
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

		found := concepts.Extract(notes)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), found)
		}
		if len(found) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No concepts found.")
			return nil
		}
		for _, c := range found {
			fmt.Fprintln(cmd.OutOrStdout(), c.Term)
		}
		return nil
	},
}

func init() {
	conceptsCmd.Flags().Bool("json", false, "Print JSON")
}
