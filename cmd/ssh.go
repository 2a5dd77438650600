package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sshCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssh [flags] VM [COMMAND...]",
		Short: "Run a command on a VM over ssh as a given user",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSSH,
	}
	cmd.Flags().StringP("login", "l", "", "remote username (default: --user)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}()

func runSSH(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	username, _ := cmd.Flags().GetString("login")
	if username == "" {
		username = conf.Username
	}
	out, err := hyper.SSH(commandContext(cmd), args[0], username, strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("ssh: %w", err)
	}
	printRaw(cmd, out)
	return nil
}
