package cmd

import (
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename VM NEW_NAME",
	Short: "Rename a VM",
	Args:  cobra.ExactArgs(2), //nolint:mnd
	RunE:  runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	out, err := hyper.Rename(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	printRaw(cmd, out)
	log.WithFunc("cmd.rename").Infof(ctx, "renamed: %s -> %s", args[0], args[1])
	return nil
}
