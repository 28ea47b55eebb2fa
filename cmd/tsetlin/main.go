package main

import "context"
import "os"
import "os/signal"
import "syscall"

import "github.com/spf13/cobra"

// app holds state shared between commands of one invocation
type app struct {
	pgo         bool
	stopProfile func() error
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:          "tsetlin",
		Short:        "Train and evaluate Tsetlin machines on boolean datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.pgo {
				return nil
			}
			stop, err := startProfile("default.pgo")
			if err != nil {
				return err
			}
			a.stopProfile = stop
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.pgo, "pgo", false, "collect a CPU profile into default.pgo")
	root.AddCommand(a.train(), a.runs())
	return root
}

// finish stops the profiler if one runs
func (a *app) finish() {
	if a.stopProfile != nil {
		if err := a.stopProfile(); err != nil {
			println(err.Error())
		}
		a.stopProfile = nil
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	var a app
	err := a.root().ExecuteContext(ctx)
	a.finish()
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
