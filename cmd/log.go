package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log VM",
	Short: "Print the VirtualBox log of a VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	out, err := hyper.Log(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	printRaw(cmd, out)
	return nil
}
