package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run VM COMMAND...",
		Short: "Run a command on a VM as the configured user",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd
		RunE:  runRun,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}()

func runRun(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	out, err := hyper.Run(commandContext(cmd), args[0], strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	printRaw(cmd, out)
	return nil
}
