package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingkaihe/agentskills/pkg/filesystem"
)

// newTestFS returns an in-memory filesystem populated with files
func newTestFS(t *testing.T, files map[string]string) filesystem.FileSystem {
	t.Helper()
	fsys := filesystem.NewMemory()
	for path, content := range files {
		require.NoError(t, fsys.WriteText(path, content))
	}
	return fsys
}

func TestFindManifest(t *testing.T) {
	t.Run("uppercase manifest", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/skill/SKILL.md": "---\nname: test\n---"})

		found, err := FindManifest(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "/skill/SKILL.md", found)
		assert.True(t, fsys.Exists(found))
	})

	t.Run("lowercase manifest", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/skill/skill.md": "---\nname: test\n---"})

		found, err := FindManifest(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "/skill/skill.md", found)
	})

	t.Run("uppercase takes precedence", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\n---",
			"/skill/skill.md": "---\n---",
		})

		found, err := FindManifest(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "/skill/SKILL.md", found)
	})

	t.Run("not found", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/skill/README.md": "# readme"})

		_, err := FindManifest(fsys, "/skill")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrManifestNotFound))
		assert.Equal(t, "no SKILL.md or skill.md found", err.Error())
	})
}

func TestIsManifestFileName(t *testing.T) {
	assert.True(t, IsManifestFileName("SKILL.md"))
	assert.True(t, IsManifestFileName("skill.md"))
	assert.False(t, IsManifestFileName("Skill.md"))
	assert.False(t, IsManifestFileName("README.md"))
}
