package skills

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/jingkaihe/agentskills/pkg/filesystem"
)

// ReadProperties locates the manifest in skillDir, parses its frontmatter and
// decodes it into Properties. It also returns the frontmatter keys exactly
// as written, including keys Properties has no field for.
//
// Only structural problems are reported here: a missing manifest, missing
// frontmatter, undecodable values, or an empty name or description.
func ReadProperties(fsys filesystem.FileSystem, skillDir string) (*Properties, []string, error) {
	manifest, err := FindManifest(fsys, skillDir)
	if err != nil {
		return nil, nil, err
	}

	content, err := fsys.ReadText(manifest)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read skill manifest")
	}

	fm, err := ExtractFrontmatter(content)
	if err != nil {
		return nil, nil, err
	}

	props, err := decodeProperties(fm.Data)
	if err != nil {
		return nil, nil, err
	}

	if props.Name == "" {
		return nil, nil, &EmptyFieldError{Field: "name"}
	}
	if props.Description == "" {
		return nil, nil, &EmptyFieldError{Field: "description"}
	}

	return props, fm.Keys, nil
}

// decodeProperties coerces untyped frontmatter into Properties. Keys without
// a matching field are ignored; values of the wrong type are an error.
func decodeProperties(data map[string]any) (*Properties, error) {
	var props Properties
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &props,
		TagName:     "mapstructure",
		ErrorUnused: false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create frontmatter decoder")
	}

	if err := decoder.Decode(data); err != nil {
		return nil, errors.Wrap(err, "failed to decode frontmatter into skill properties")
	}

	return &props, nil
}
