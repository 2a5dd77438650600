package cmd

import (
	"github.com/spf13/cobra"
)

var suspendCmd = &cobra.Command{
	Use:   "suspend VM",
	Short: "Save VM state and stop it",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuspend,
}

func runSuspend(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	return lifecycleCmd(cmd, "suspend", "suspended", hyper.Suspend, args[0])
}
