package main

import (
	"testing"

	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProperties(t *testing.T) {
	props := &skills.Properties{Name: "demo", Description: "A demo skill", License: skills.StringPtr("MIT")}

	t.Run("json", func(t *testing.T) {
		out, err := renderProperties(props, "json")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"name\": \"demo\",\n  \"description\": \"A demo skill\",\n  \"license\": \"MIT\"\n}", out)
	})

	t.Run("yaml without trailing newline", func(t *testing.T) {
		out, err := renderProperties(props, "yaml")
		require.NoError(t, err)
		assert.Equal(t, "name: demo\ndescription: A demo skill\nlicense: MIT", out)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := renderProperties(props, "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported output format "toml"`)
	})
}
