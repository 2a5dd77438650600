package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script VM FILE",
	Short: "Run each line of FILE on a VM (\"-\" reads stdin)",
	Args:  cobra.ExactArgs(2), //nolint:mnd
	RunE:  runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	hyper, err := initHypervisor()
	if err != nil {
		return err
	}
	script, err := readScript(cmd, args[1])
	if err != nil {
		return err
	}
	out, err := hyper.Script(commandContext(cmd), args[0], script)
	printRaw(cmd, out)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func readScript(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) //nolint:gosec
	}
	if err != nil {
		return "", fmt.Errorf("read script %s: %w", path, err)
	}
	return string(data), nil
}
