package cmd

import (
	"github.com/spf13/cobra"
)

var rebootCmd = &cobra.Command{
	Use:   "reboot VM",
	Short: "Hard-reset a running VM",
	Args:  cobra.ExactArgs(1),
	RunE:  runReboot,
}

func runReboot(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	return lifecycleCmd(cmd, "reboot", "rebooted", hyper.Reboot, args[0])
}
