package cmd

import (
	"context"
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start VM",
	Short: "Start a VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	return lifecycleCmd(cmd, "start", "started", hyper.Start, args[0])
}

// lifecycleCmd is a generic handler for start/stop style commands: it runs fn
// on one VM and prints the tool output verbatim.
func lifecycleCmd(cmd *cobra.Command, name, pastTense string, fn func(context.Context, string) (string, error), vm string) error {
	ctx := commandContext(cmd)
	out, err := fn(ctx, vm)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	printRaw(cmd, out)
	log.WithFunc("cmd."+name).Infof(ctx, "%s: %s", pastTense, vm)
	return nil
}
