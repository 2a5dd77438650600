package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List images",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hyper, err := initHypervisor()
		if err != nil {
			return err
		}
		images, err := hyper.Images(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("images: %w", err)
		}
		return printResult(cmd, images)
	},
}

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List flavors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hyper, err := initHypervisor()
		if err != nil {
			return err
		}
		flavors, err := hyper.Flavors(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("flavors: %w", err)
		}
		return printResult(cmd, flavors)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hyper, err := initHypervisor()
		if err != nil {
			return err
		}
		keys, err := hyper.Keys(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		return printResult(cmd, keys)
	},
}
