package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreadableFS reports every path as present but fails to read any of them
type unreadableFS struct{}

func (unreadableFS) Exists(string) bool {
	return true
}

func (unreadableFS) ReadText(string) (string, error) {
	return "", errors.New("permission denied")
}

func (unreadableFS) WriteText(string, string) error {
	return errors.New("read-only")
}

func TestReadProperties(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: test-skill\ndescription: Test Description\n---",
		})

		props, keys, err := ReadProperties(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "test-skill", props.Name)
		assert.Equal(t, "Test Description", props.Description)
		assert.Nil(t, props.Compatibility)
		assert.Nil(t, props.License)
		assert.Nil(t, props.AllowedTools)
		assert.Nil(t, props.Metadata)
		assert.Equal(t, []string{"name", "description"}, keys)
	})

	t.Run("optional fields", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: test-skill\ndescription: Test\nlicense: MIT\ncompatibility: v1.0\nallowed-tools: bash python\n---",
		})

		props, _, err := ReadProperties(fsys, "/skill")
		require.NoError(t, err)
		require.NotNil(t, props.License)
		require.NotNil(t, props.Compatibility)
		require.NotNil(t, props.AllowedTools)
		assert.Equal(t, "MIT", *props.License)
		assert.Equal(t, "v1.0", *props.Compatibility)
		assert.Equal(t, "bash python", *props.AllowedTools)
	})

	t.Run("metadata", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: test-skill\ndescription: Test\nmetadata:\n  author: jane\n  version: \"2\"\n---\n# Body\n",
		})

		props, _, err := ReadProperties(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"author": "jane", "version": "2"}, props.Metadata)
	})

	t.Run("lowercase manifest", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/skill.md": "---\nname: lower\ndescription: From lowercase file\n---",
		})

		props, _, err := ReadProperties(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "lower", props.Name)
	})

	t.Run("unknown keys are kept in the raw key set", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: test-skill\nunknown-field: x\ndescription: ok\n---",
		})

		props, keys, err := ReadProperties(fsys, "/skill")
		require.NoError(t, err)
		assert.Equal(t, "test-skill", props.Name)
		assert.Equal(t, []string{"name", "unknown-field", "description"}, keys)
	})

	t.Run("multiple skills are isolated", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill1/SKILL.md": "---\nname: skill1\ndescription: First\n---",
			"/skill2/SKILL.md": "---\nname: skill2\ndescription: Second\n---",
		})

		props1, _, err := ReadProperties(fsys, "/skill1")
		require.NoError(t, err)
		props2, _, err := ReadProperties(fsys, "/skill2")
		require.NoError(t, err)
		assert.Equal(t, "skill1", props1.Name)
		assert.Equal(t, "skill2", props2.Name)
	})
}

func TestReadPropertiesErrors(t *testing.T) {
	t.Run("manifest not found", func(t *testing.T) {
		fsys := newTestFS(t, nil)

		_, _, err := ReadProperties(fsys, "/nonexistent")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrManifestNotFound))
	})

	t.Run("missing frontmatter", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/skill/SKILL.md": "# Just content\n"})

		_, _, err := ReadProperties(fsys, "/skill")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingFrontmatter))
	})

	t.Run("read failure", func(t *testing.T) {
		_, _, err := ReadProperties(unreadableFS{}, "/skill")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read skill manifest")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("missing name", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\ndescription: Only has description, missing name\n---",
		})

		_, _, err := ReadProperties(fsys, "/skill")
		var fieldErr *EmptyFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "name", fieldErr.Field)
		assert.Equal(t, "required field is empty: name", err.Error())
	})

	t.Run("empty description", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: skill\ndescription: \"\"\n---",
		})

		_, _, err := ReadProperties(fsys, "/skill")
		var fieldErr *EmptyFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "description", fieldErr.Field)
	})

	t.Run("name checked before description", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{"/skill/SKILL.md": "---\nlicense: MIT\n---"})

		_, _, err := ReadProperties(fsys, "/skill")
		var fieldErr *EmptyFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "name", fieldErr.Field)
	})

	t.Run("wrong value type", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: [a, b]\ndescription: ok\n---",
		})

		_, _, err := ReadProperties(fsys, "/skill")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode frontmatter")
		_, isValidation := AsValidationError(err)
		assert.False(t, isValidation)
	})

	t.Run("non-string metadata value", func(t *testing.T) {
		fsys := newTestFS(t, map[string]string{
			"/skill/SKILL.md": "---\nname: skill\ndescription: ok\nmetadata:\n  nested:\n    deep: true\n---",
		})

		_, _, err := ReadProperties(fsys, "/skill")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode frontmatter")
	})
}
