package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vboxctl/types"
)

var createCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [flags] NAME",
		Short: "Create a VM (not yet supported)",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}
	cmd.Flags().String("image", "", "image to boot from")
	cmd.Flags().String("flavor", "", "size of the VM")
	cmd.Flags().Int("timeout", 360, "provisioning timeout in seconds") //nolint:mnd
	return cmd
}()

func runCreate(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	image, _ := cmd.Flags().GetString("image")
	flavor, _ := cmd.Flags().GetString("flavor")
	timeout, _ := cmd.Flags().GetInt("timeout")

	if err := hyper.Create(commandContext(cmd), &types.VMConfig{
		Name:           args[0],
		Image:          image,
		Flavor:         flavor,
		TimeoutSeconds: timeout,
	}); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}
