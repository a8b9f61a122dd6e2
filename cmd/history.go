package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show completed quiz results",
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

		entries, err := st.HistoryLog(stderrLogger()).ReadAll(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			raw, err := store.EncodeHistory(entries)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(raw))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, "No completed quizzes yet.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COMPLETED\tSUBJECT\tSCORE\tPERCENT")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d%%\n",
				e.CompletedAt.Local().Format("2006-01-02 15:04"), e.Subject, e.Score, e.Total, e.Percentage)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Bool("json", false, "Print the raw persisted log")
}
