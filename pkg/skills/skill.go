// Package skills reads and validates agent skill manifests. A skill is a
// directory containing a SKILL.md file whose YAML frontmatter names and
// describes the skill; the markdown body that follows is not interpreted.
package skills

import (
	"bytes"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Properties is the typed form of a manifest's frontmatter
type Properties struct {
	Name          string            `mapstructure:"name" json:"name" yaml:"name" jsonschema:"minLength=1,maxLength=64,description=Lowercase skill identifier that matches the skill directory name"`
	Description   string            `mapstructure:"description" json:"description" yaml:"description" jsonschema:"minLength=1,maxLength=1024,description=What the skill does and when to use it"`
	Compatibility *string           `mapstructure:"compatibility" json:"compatibility,omitempty" yaml:"compatibility,omitempty" jsonschema:"maxLength=500,description=Environment requirements of the skill"`
	License       *string           `mapstructure:"license" json:"license,omitempty" yaml:"license,omitempty" jsonschema:"description=License the skill is distributed under"`
	AllowedTools  *string           `mapstructure:"allowed-tools" json:"allowed-tools,omitempty" yaml:"allowed-tools,omitempty" jsonschema:"description=Tools the skill is pre-approved to use"`
	Metadata      map[string]string `mapstructure:"metadata" json:"metadata,omitempty" yaml:"metadata,omitempty" jsonschema:"description=Additional string key/value pairs"`
}

// JSON renders the properties as indented JSON. Absent optional fields are omitted.
func (p *Properties) JSON() (string, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal skill properties")
	}
	return string(out), nil
}

// YAML renders the properties as a YAML document
func (p *Properties) YAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return "", errors.Wrap(err, "failed to marshal skill properties")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "failed to marshal skill properties")
	}
	return buf.String(), nil
}

// Schema returns the JSON Schema describing valid frontmatter
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Properties{})
	schema.Title = "Agent skill frontmatter"
	return schema
}

// StringPtr returns a pointer to s, for building optional properties
func StringPtr(s string) *string {
	return &s
}
