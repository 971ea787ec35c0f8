package main

import (
	"encoding/json"
	"os"

	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of skill frontmatter",
	Long:  `Print the JSON Schema describing the SKILL.md frontmatter fields and their limits.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		out, err := json.MarshalIndent(skills.Schema(), "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to render schema")
			os.Exit(1)
		}
		presenter.Output(string(out))
	},
}
