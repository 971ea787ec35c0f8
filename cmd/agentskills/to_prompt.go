package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/jingkaihe/agentskills/pkg/filesystem"
	"github.com/jingkaihe/agentskills/pkg/logger"
	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var toPromptCmd = &cobra.Command{
	Use:   "to-prompt [path]...",
	Short: "Render skills as an <available_skills> block",
	Long: `Read one or more skills and print the <available_skills> XML block used in
agent system prompts. Each path may be a skill directory, a SKILL.md file, or a
glob pattern such as 'skills/**/SKILL.md'.

Skills that fail to load are reported as warnings and skipped. The command only
fails when paths were given and none of them could be read. Each <location> is
the manifest path as reached from the given argument, so relative arguments
produce relative locations.

Examples:
  agentskills to-prompt skills/pdf-processing skills/data-analysis
  agentskills to-prompt 'skills/*'
  agentskills to-prompt 'skills/*' --exclude 'internal-*'`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := getToPromptConfigFromFlags(cmd)
		excludes, err := compileExcludes(config.Exclude)
		if err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		ctx := cmd.Context()
		fsys := filesystem.NewOS()

		paths, failed := expandSkillPaths(ctx, args)
		entries, readFailures := loadSkills(ctx, fsys, paths)
		failed += readFailures

		if failed > 0 && len(entries) == 0 {
			logger.G(ctx).WithField("failed", failed).Debug("no skill could be read")
			presenter.Error(errors.New("no skill could be read"), "")
			os.Exit(1)
		}

		presenter.Output(skills.RenderListing(excludeSkills(ctx, entries, excludes)))
	},
}

// ToPromptConfig holds configuration for the to-prompt command
type ToPromptConfig struct {
	Exclude []string
}

// NewToPromptConfig creates a new ToPromptConfig with default values
func NewToPromptConfig() *ToPromptConfig {
	return &ToPromptConfig{
		Exclude: []string{},
	}
}

func init() {
	defaults := NewToPromptConfig()
	toPromptCmd.Flags().StringSliceP("exclude", "x", defaults.Exclude, "Skill name patterns to leave out of the listing (e.g. 'internal-*')")
}

func getToPromptConfigFromFlags(cmd *cobra.Command) *ToPromptConfig {
	config := NewToPromptConfig()
	if exclude, err := cmd.Flags().GetStringSlice("exclude"); err == nil {
		config.Exclude = exclude
	}
	return config
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// excludeSkills drops entries whose name matches any exclude pattern
func excludeSkills(ctx context.Context, entries []skills.SkillWithLocation, excludes []glob.Glob) []skills.SkillWithLocation {
	if len(excludes) == 0 {
		return entries
	}

	kept := entries[:0]
	for _, entry := range entries {
		if matchesAny(excludes, entry.Properties.Name) {
			logger.G(ctx).WithField("name", entry.Properties.Name).Debug("excluded skill from listing")
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// expandSkillPaths expands glob patterns and maps every path onto its skill
// directory, dropping duplicates. Paths keep the form they were given in. It
// returns the number of arguments that could not be resolved.
func expandSkillPaths(ctx context.Context, args []string) ([]string, int) {
	var (
		dirs   []string
		failed int
	)
	seen := make(map[string]bool)

	for _, arg := range args {
		matches := []string{arg}
		if hasGlobMeta(arg) {
			var err error
			matches, err = doublestar.FilepathGlob(arg)
			if err != nil {
				presenter.Warning(fmt.Sprintf("Skipping invalid pattern %q: %v", arg, err))
				failed++
				continue
			}
			if len(matches) == 0 {
				presenter.Warning(fmt.Sprintf("Skipping %q: no paths match", arg))
				failed++
				continue
			}
			logger.G(ctx).WithField("pattern", arg).WithField("matches", len(matches)).Debug("expanded glob pattern")
		}

		for _, match := range matches {
			dir := filepath.Clean(resolveSkillPath(match))
			if seen[dir] {
				continue
			}
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	return dirs, failed
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// loadSkills reads each skill directory, warning about and skipping failures
func loadSkills(ctx context.Context, fsys filesystem.FileSystem, dirs []string) ([]skills.SkillWithLocation, int) {
	var (
		entries []skills.SkillWithLocation
		failed  int
	)

	for _, dir := range dirs {
		log := logger.G(ctx).WithField("path", dir)

		props, _, err := skills.ReadProperties(fsys, dir)
		if err != nil {
			log.WithError(err).Debug("failed to read skill")
			presenter.Warning(fmt.Sprintf("Skipping %s: %v", dir, err))
			failed++
			continue
		}

		location, err := skills.FindManifest(fsys, dir)
		if err != nil {
			presenter.Warning(fmt.Sprintf("Skipping %s: %v", dir, err))
			failed++
			continue
		}

		log.WithField("name", props.Name).Debug("loaded skill")
		entries = append(entries, skills.SkillWithLocation{Properties: props, Location: location})
	}

	return entries, failed
}
