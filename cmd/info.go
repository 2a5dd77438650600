package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info VM",
	Aliases: []string{"inspect"},
	Short:   "Show machine-readable VM details",
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	info, err := hyper.Info(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	return printResult(cmd, info)
}
