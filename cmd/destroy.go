package cmd

import (
	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:     "destroy VM",
	Aliases: []string{"rm"},
	Short:   "Unregister a VM and delete its files",
	Args:    cobra.ExactArgs(1),
	RunE:    runDestroy,
}

func runDestroy(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	return lifecycleCmd(cmd, "destroy", "destroyed", hyper.Destroy, args[0])
}
