package main

import (
	"os"
	"strings"

	"github.com/jingkaihe/agentskills/pkg/config"
	"github.com/jingkaihe/agentskills/pkg/filesystem"
	"github.com/jingkaihe/agentskills/pkg/logger"
	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var readPropertiesCmd = &cobra.Command{
	Use:   "read-properties <path>",
	Short: "Print the properties of a skill",
	Long: `Read the SKILL.md frontmatter of a skill and print its properties.
Only the required fields are checked; use 'agentskills validate' for the full rule set.

Examples:
  agentskills read-properties skills/pdf-processing
  agentskills read-properties skills/pdf-processing/SKILL.md --format yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := absSkillPath(args[0])
		if err != nil {
			presenter.Error(err, "Failed to resolve skill path")
			os.Exit(1)
		}

		logger.G(cmd.Context()).WithField("path", dir).Debug("reading skill properties")

		props, _, err := skills.ReadProperties(filesystem.NewOS(), dir)
		if err != nil {
			presenter.Error(err, "Failed to read skill properties")
			os.Exit(1)
		}

		out, err := renderProperties(props, cfg.Format)
		if err != nil {
			presenter.Error(err, "Failed to render skill properties")
			os.Exit(1)
		}
		presenter.Output(out)
	},
}

func init() {
	readPropertiesCmd.Flags().StringP("format", "f", config.FormatJSON, "Output format (json or yaml)")
	viper.BindPFlag("format", readPropertiesCmd.Flags().Lookup("format"))
}

func renderProperties(props *skills.Properties, format string) (string, error) {
	switch format {
	case config.FormatJSON:
		return props.JSON()
	case config.FormatYAML:
		out, err := props.YAML()
		if err != nil {
			return "", err
		}
		// Output appends the final newline
		return strings.TrimSuffix(out, "\n"), nil
	default:
		return "", errors.Errorf("unsupported output format %q", format)
	}
}
