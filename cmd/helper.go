package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vboxctl/config"
	"github.com/projecteru2/vboxctl/hypervisor"
	"github.com/projecteru2/vboxctl/hypervisor/vbox"
	"github.com/projecteru2/vboxctl/output"
)

// newHypervisor builds the backend; tests replace it.
var newHypervisor = func(conf *config.Config) (hypervisor.Hypervisor, error) {
	return vbox.New(conf)
}

// initHypervisor initializes the hypervisor from the loaded config.
func initHypervisor() (hypervisor.Hypervisor, error) {
	hyper, err := newHypervisor(conf)
	if err != nil {
		return nil, fmt.Errorf("init hypervisor: %w", err)
	}
	return hyper, nil
}

// printRaw writes pass-through tool output verbatim.
func printRaw(cmd *cobra.Command, out string) {
	_, _ = io.WriteString(cmd.OutOrStdout(), out)
}

// printResult renders v in the configured output format.
func printResult(cmd *cobra.Command, v any) error {
	return output.Write(cmd.OutOrStdout(), output.Format(conf.Output), v)
}
