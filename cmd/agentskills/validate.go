package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jingkaihe/agentskills/pkg/filesystem"
	"github.com/jingkaihe/agentskills/pkg/logger"
	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ValidateConfig holds configuration for the validate command
type ValidateConfig struct {
	Watch    bool
	Debounce int
}

// NewValidateConfig creates a new ValidateConfig with default values
func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Watch:    false,
		Debounce: 200,
	}
}

// Validate validates the ValidateConfig and returns an error if invalid
func (c *ValidateConfig) Validate() error {
	if c.Debounce < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.Debounce)
	}
	return nil
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill directory",
	Long: `Validate the SKILL.md manifest of a skill directory. The path may be the
skill directory itself or the SKILL.md / skill.md file inside it.

Every rule is checked and all violations are reported together.

Examples:
  agentskills validate skills/pdf-processing
  agentskills validate skills/pdf-processing/SKILL.md
  agentskills validate . --watch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		dir, err := absSkillPath(args[0])
		if err != nil {
			presenter.Error(err, "Failed to resolve skill path")
			os.Exit(1)
		}

		ctx := cmd.Context()
		fsys := filesystem.NewOS()

		if config.Watch {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := watchSkill(ctx, fsys, dir, time.Duration(config.Debounce)*time.Millisecond); err != nil {
				presenter.Error(err, "Failed to watch skill")
				os.Exit(1)
			}
			return
		}

		if !validateSkill(ctx, fsys, dir) {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().BoolP("watch", "w", defaults.Watch, "Re-validate whenever the manifest changes")
	validateCmd.Flags().Int("debounce", defaults.Debounce, "Debounce time in milliseconds for manifest change events")
}

// getValidateConfigFromFlags extracts validate configuration from command flags
func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	if debounce, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.Debounce = debounce
	}
	return config
}

// validateSkill validates dir and reports the outcome, returning whether it passed
func validateSkill(ctx context.Context, fsys filesystem.FileSystem, dir string) bool {
	log := logger.G(ctx).WithField("path", dir)
	log.Debug("validating skill")

	props, err := skills.Validate(fsys, dir)
	if err != nil {
		log.WithError(err).Debug("skill validation failed")
		reportValidationError(err)
		return false
	}

	log.WithField("name", props.Name).Debug("skill is valid")
	presenter.Success("Skill is valid")
	return true
}

func reportValidationError(err error) {
	if verr, ok := skills.AsValidationError(err); ok {
		presenter.Violations("Validation failed", verr.Violations())
		return
	}
	presenter.Error(err, "Validation failed")
}
