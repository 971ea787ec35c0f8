package main

import (
	"context"
	"os"

	"github.com/jingkaihe/agentskills/pkg/config"
	"github.com/jingkaihe/agentskills/pkg/logger"
	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cfg holds the settings loaded before any subcommand runs
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "agentskills",
	Short: "Parse, validate and render agent skill manifests",
	Long: `agentskills reads the YAML frontmatter of SKILL.md manifests, checks it
against the agent skill naming and length rules, and renders skills as an
<available_skills> block for agent system prompts.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupCommand(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $HOME/.agentskills/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress success and informational output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(readPropertiesCmd)
	rootCmd.AddCommand(toPromptCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupCommand loads configuration and applies it to the logger and presenter
func setupCommand(cmd *cobra.Command) {
	configFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(configFile); err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}

	loaded, err := config.Load()
	if err != nil {
		presenter.Error(err, "Invalid configuration")
		os.Exit(1)
	}

	if err := logger.Configure(loaded.LogLevel, loaded.LogFormat, os.Stderr); err != nil {
		presenter.Error(err, "Invalid configuration")
		os.Exit(1)
	}
	presenter.SetQuiet(loaded.Quiet)
	cfg = loaded

	ctx := cmd.Context()
	log := logger.G(ctx).WithField("command", cmd.Name())
	log.WithFields(commandFlags(cmd)).Debug("running command")
	cmd.SetContext(logger.WithLogger(ctx, log))
}

// commandFlags returns the flags set explicitly on the command line as log fields
func commandFlags(cmd *cobra.Command) logrus.Fields {
	fields := logrus.Fields{}
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		fields["flag."+flag.Name] = flag.Value.String()
	})
	return fields
}

func main() {
	ctx := logger.WithLogger(context.Background(), logger.L)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
