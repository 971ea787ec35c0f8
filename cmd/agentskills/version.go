package main

import (
	"os"

	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of agentskills in JSON format.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		out, err := version.Get().JSON()
		if err != nil {
			presenter.Error(err, "Failed to format version info")
			os.Exit(1)
		}
		presenter.Output(out)
	},
}
