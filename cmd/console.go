package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console VM",
	Short: "Stream a VM console (not supported by VirtualBox)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	conn, err := hyper.Console(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer conn.Close() //nolint:errcheck
	if _, err := io.Copy(cmd.OutOrStdout(), conn); err != nil {
		return fmt.Errorf("console %s: %w", args[0], err)
	}
	return nil
}
