package skills

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Frontmatter is the YAML header block of a manifest, decoded without any
// knowledge of the properties model
type Frontmatter struct {
	// Keys lists the top-level keys in document order
	Keys []string
	// Data holds the decoded header values
	Data map[string]any
}

// ExtractFrontmatter parses the header block delimited by "---" lines at the
// start of content. Anything after the closing delimiter is ignored.
// ErrMissingFrontmatter is returned when either delimiter is absent or the
// block holds no keys.
func ExtractFrontmatter(content string) (*Frontmatter, error) {
	block, ok := splitFrontmatter(content)
	if !ok {
		return nil, ErrMissingFrontmatter
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse frontmatter")
	}
	if len(doc.Content) == 0 {
		return nil, ErrMissingFrontmatter
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, ErrMissingFrontmatter
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("failed to parse frontmatter: expected a mapping of keys to values, got %s", nodeKindName(root))
	}
	if len(root.Content) == 0 {
		return nil, ErrMissingFrontmatter
	}

	keys := mappingKeys(root, nil, make(map[string]bool))

	data := make(map[string]any, len(keys))
	if err := root.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode frontmatter")
	}

	return &Frontmatter{Keys: keys, Data: data}, nil
}

// splitFrontmatter returns the text between the opening and closing
// delimiter lines. The opening delimiter must be the first line.
func splitFrontmatter(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")
	if !isDelimiterLine(lines[0]) {
		return "", false
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			return strings.Join(lines[1:i], "\n"), true
		}
	}

	return "", false
}

// mappingKeys appends the keys of mapping to keys in document order. Merge
// keys ("<<") are replaced by the keys they pull in, so the result matches
// the keys of the decoded map.
func mappingKeys(mapping *yaml.Node, keys []string, seen map[string]bool) []string {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.ShortTag() == "!!merge" {
			for _, merged := range mergeSources(value) {
				keys = mappingKeys(merged, keys, seen)
			}
			continue
		}
		if !seen[key.Value] {
			seen[key.Value] = true
			keys = append(keys, key.Value)
		}
	}
	return keys
}

// mergeSources resolves the value of a merge key to the mappings it names
func mergeSources(value *yaml.Node) []*yaml.Node {
	switch value.Kind {
	case yaml.AliasNode:
		return mergeSources(value.Alias)
	case yaml.MappingNode:
		return []*yaml.Node{value}
	case yaml.SequenceNode:
		var sources []*yaml.Node
		for _, item := range value.Content {
			sources = append(sources, mergeSources(item)...)
		}
		return sources
	default:
		return nil
	}
}

func isDelimiterLine(line string) bool {
	return strings.TrimRight(line, " \t\r") == frontmatterDelimiter
}

func nodeKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unsupported node"
	}
}
