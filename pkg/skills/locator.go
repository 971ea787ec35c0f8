package skills

import (
	"path/filepath"

	"github.com/jingkaihe/agentskills/pkg/filesystem"
)

const (
	// ManifestFileName is the canonical manifest name, checked first
	ManifestFileName = "SKILL.md"
	// LowercaseManifestFileName is accepted when ManifestFileName is absent
	LowercaseManifestFileName = "skill.md"
)

// manifestFileNames lists accepted manifest names in order of precedence
var manifestFileNames = []string{ManifestFileName, LowercaseManifestFileName}

// FindManifest returns the path of the manifest inside skillDir. SKILL.md
// takes precedence over skill.md when both exist.
func FindManifest(fsys filesystem.FileSystem, skillDir string) (string, error) {
	for _, name := range manifestFileNames {
		path := filepath.Join(skillDir, name)
		if fsys.Exists(path) {
			return path, nil
		}
	}
	return "", ErrManifestNotFound
}

// IsManifestFileName reports whether name is one of the accepted manifest file names
func IsManifestFileName(name string) bool {
	for _, candidate := range manifestFileNames {
		if name == candidate {
			return true
		}
	}
	return false
}
