package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/ArnaudCalmettes/binarize/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyInput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		var runs []models.Run
		if historyInput != "" {
			runs, err = models.FindRuns(db, historyInput)
		} else {
			runs, err = models.ListRuns(db, historyLimit)
		}
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			logger.Warn("No runs recorded yet. Use --record to keep track of them.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 5, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DATE\tMETHOD\tPARAMS\tSIZE\tTIME\tINPUT\tOUTPUT\t")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%s\t%s\t%s\t\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Method, r.Params(),
				r.Width, r.Height, r.Duration.Round(time.Millisecond), r.Input, r.Output)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&historyInput, "input", "", "only show runs on this input")
}
