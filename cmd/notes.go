package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readNotes reads notes from the file named by args[0], or stdin when no
// file (or "-") is given. Notes longer than maxChars runes are truncated.
func readNotes(cmd *cobra.Command, args []string, maxChars int) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open notes: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}
	return truncateRunes(string(data), maxChars), nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
