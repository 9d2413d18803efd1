package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/feynman/internal/store"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light]",
	Short:     "Show or set the UI theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{store.ThemeDark, store.ThemeLight},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		prefs := st.PrefsRepo()
		if len(args) == 1 {
			if err := prefs.SetTheme(ctx, args[0]); err != nil {
				return fmt.Errorf("set theme: %w", err)
			}
		}

		name, err := prefs.Theme(ctx)
		if err != nil {
			return fmt.Errorf("get theme: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
