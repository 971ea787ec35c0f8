package skills

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jingkaihe/agentskills/pkg/filesystem"
)

const (
	maxNameLength          = 64
	maxDescriptionLength   = 1024
	maxCompatibilityLength = 500
)

// AllowedFields lists the frontmatter keys a manifest may contain
var AllowedFields = []string{
	"name",
	"description",
	"license",
	"allowed-tools",
	"metadata",
	"compatibility",
}

// Normalizer maps a string to the form used when comparing names
type Normalizer func(string) string

// Validator checks skill manifests against the naming, length and field rules
type Validator struct {
	normalize Normalizer
}

// ValidatorOption configures a Validator
type ValidatorOption func(*Validator)

// WithNormalizer replaces the NFKC normalization applied to names and
// directory names before they are checked
func WithNormalizer(n Normalizer) ValidatorOption {
	return func(v *Validator) {
		if n != nil {
			v.normalize = n
		}
	}
}

// NewValidator creates a Validator. Names are NFKC-normalized unless
// WithNormalizer says otherwise.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{normalize: norm.NFKC.String}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate reads the skill in skillDir and checks it with the default Validator
func Validate(fsys filesystem.FileSystem, skillDir string) (*Properties, error) {
	return defaultValidator.Validate(fsys, skillDir)
}

// Validate reads the skill in skillDir and checks every rule. Structural
// failures from ReadProperties are returned as is. Otherwise all rule
// violations are reported together in a *ValidationError.
func (v *Validator) Validate(fsys filesystem.FileSystem, skillDir string) (*Properties, error) {
	props, keys, err := ReadProperties(fsys, skillDir)
	if err != nil {
		return nil, err
	}
	return v.Check(props, keys, skillDir)
}

// Check applies the rules to properties that have already been read. keys
// must be the raw frontmatter keys the properties were decoded from.
func (v *Validator) Check(props *Properties, keys []string, skillDir string) (*Properties, error) {
	var violations []string
	violations = append(violations, checkAllowedFields(keys)...)
	violations = append(violations, v.checkName(props.Name, skillDir)...)
	violations = append(violations, checkDescription(props.Description)...)
	if props.Compatibility != nil {
		violations = append(violations, checkCompatibility(*props.Compatibility)...)
	}

	if len(violations) > 0 {
		return nil, newValidationError(violations...)
	}
	return props, nil
}

func checkAllowedFields(keys []string) []string {
	var extra []string
	for _, key := range keys {
		if !isAllowedField(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}

	sort.Strings(extra)
	return []string{fmt.Sprintf(
		"Unexpected fields in frontmatter: %s. Only %s are allowed.",
		strings.Join(extra, ", "),
		strings.Join(AllowedFields, ", "),
	)}
}

func isAllowedField(key string) bool {
	for _, allowed := range AllowedFields {
		if key == allowed {
			return true
		}
	}
	return false
}

func (v *Validator) checkName(name, skillDir string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{"name must be a non-empty string"}
	}

	normalized := v.normalize(trimmed)

	var violations []string
	if utf8.RuneCountInString(normalized) > maxNameLength {
		violations = append(violations, fmt.Sprintf("name exceeds %d character limit", maxNameLength))
	}
	if normalized != strings.ToLower(normalized) {
		violations = append(violations, "name must be lowercase")
	}
	if strings.HasPrefix(normalized, "-") || strings.HasSuffix(normalized, "-") {
		violations = append(violations, "name cannot start or end with a hyphen")
	}
	if strings.Contains(normalized, "--") {
		violations = append(violations, "name cannot contain consecutive hyphens")
	}
	if strings.IndexFunc(normalized, func(r rune) bool { return !isNameRune(r) }) >= 0 {
		violations = append(violations, "name contains invalid characters; only letters, digits, and hyphens are allowed")
	}

	dirName := directoryName(skillDir)
	if v.normalize(dirName) != normalized {
		violations = append(violations, fmt.Sprintf("name '%s' must match directory name '%s'", trimmed, dirName))
	}

	return violations
}

// isNameRune reports whether r is a hyphen or a Unicode alphabetic or numeric character
func isNameRune(r rune) bool {
	return r == '-' ||
		unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

// directoryName returns the final segment of dir, or "" when dir has none
func directoryName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}

func checkDescription(description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{"description must be a non-empty string"}
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return []string{fmt.Sprintf("description exceeds %d character limit", maxDescriptionLength)}
	}
	return nil
}

func checkCompatibility(compatibility string) []string {
	if utf8.RuneCountInString(compatibility) > maxCompatibilityLength {
		return []string{fmt.Sprintf("compatibility exceeds %d character limit", maxCompatibilityLength)}
	}
	return nil
}
