package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "feynman", displayVersion(version))
	},
}

// displayVersion returns v in canonical semver form ("1.2" -> "v1.2.0").
// Non-semver values such as "(devel)" are returned unchanged.
func displayVersion(v string) string {
	tagged := v
	if !strings.HasPrefix(tagged, "v") {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return v
	}
	return semver.Canonical(tagged)
}
