package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/checkpoints"
	"github.com/abhisek/feynman/internal/lessons"
)

var explainCmd = &cobra.Command{
	Use:   "explain (--title TITLE | --term TERM) [file]",
	Short: "Explain a checkpoint simply, using notes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		if term, _ := cmd.Flags().GetString("term"); strings.TrimSpace(term) != "" {
			title = checkpoints.TitlePrefix + strings.TrimSpace(term)
		}
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("--title or --term is required")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		notes, err := readNotes(cmd, args, cfg.Notes.MaxChars)
		if err != nil {
			return err
		}

		cp := checkpoints.Checkpoint{ID: 1, Title: title}
		content := lessons.Generate(cp, notes)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), content)
		}
		printExplanation(cmd.OutOrStdout(), title, content)
		return nil
	},
}

func init() {
	explainCmd.Flags().String("title", "", "Checkpoint title, used as given")
	explainCmd.Flags().String("term", "", "Key term; explains the checkpoint \"Understanding TERM\"")
	explainCmd.MarkFlagsMutuallyExclusive("title", "term")
	explainCmd.Flags().Bool("json", false, "Print JSON")
}

func printExplanation(w io.Writer, title string, c lessons.ExplanationContent) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Simplified Explanation")
	for i, s := range c.SimplifiedExplanation {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	if len(c.KeyConcepts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Key Concepts")
		for _, kc := range c.KeyConcepts {
			fmt.Fprintf(w, "  %s: %s\n", kc.Term, kc.Definition)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Analogies & Examples")
	for _, ill := range c.AnalogiesAndExamples {
		fmt.Fprintf(w, "  [%s] %s\n", ill.Type, ill.Content)
		if ill.Explanation != "" {
			fmt.Fprintf(w, "      %s\n", ill.Explanation)
		}
	}
}
