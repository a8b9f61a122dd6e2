package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Print or set the stored color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		prefs := st.Prefs()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			stored, err := prefs.Theme(cmd.Context())
			if err != nil {
				return err
			}
			if stored == "" {
				stored = string(theme.Dark) + " (default)"
			}
			fmt.Fprintln(out, stored)
			return nil
		}

		mode, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}
		if err := prefs.SetTheme(cmd.Context(), string(mode)); err != nil {
			return err
		}
		fmt.Fprintln(out, "Theme set to", mode)
		return nil
	},
}
