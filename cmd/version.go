package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vboxctl/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version, git revision, and build timestamp",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String())
	},
}
