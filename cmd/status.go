package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status VM",
	Short: "Print the VM state",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	state, err := hyper.Status(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), state)
	return nil
}
