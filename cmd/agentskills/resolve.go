package main

import (
	"path/filepath"

	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/pkg/errors"
)

// resolveSkillPath maps a path to a manifest file onto its skill directory
func resolveSkillPath(path string) string {
	if skills.IsManifestFileName(filepath.Base(path)) {
		return filepath.Dir(path)
	}
	return path
}

// absSkillPath resolves path to an absolute skill directory so that "."
// validates against the real directory name
func absSkillPath(path string) (string, error) {
	abs, err := filepath.Abs(resolveSkillPath(path))
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", path)
	}
	return abs, nil
}
