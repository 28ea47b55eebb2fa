package main

import "fmt"
import "text/tabwriter"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/neurlang/tsetlin/runlog"

func (a *app) runs() *cobra.Command {
	var path string
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded training runs, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return errors.New("--run-log is required")
			}
			store, err := runlog.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTARTED\tDATASET\tCLAUSES\tT\tS\tSEED\tEPOCHS\tCORRECT")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%g\t%d\t%d\t%d/%d\n",
					r.ID, r.Started.Local().Format("2006-01-02 15:04:05"), r.Dataset,
					r.Clauses, r.Threshold, r.S, r.Seed, r.Epochs, r.Correct, r.Total)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&path, "run-log", "", "SQLite run log")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs")
	return cmd
}
