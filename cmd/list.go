package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered VMs",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	vms, err := hyper.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return printResult(cmd, vms)
}
