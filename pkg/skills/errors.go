package skills

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	// ErrManifestNotFound is returned when a skill directory holds neither SKILL.md nor skill.md
	ErrManifestNotFound = errors.New("no SKILL.md or skill.md found")
	// ErrMissingFrontmatter is returned when a manifest has no delimited, non-empty frontmatter block
	ErrMissingFrontmatter = errors.New("no valid frontmatter found")
)

// EmptyFieldError reports a required frontmatter field that is missing or empty
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("required field is empty: %s", e.Field)
}

// ValidationError carries every content rule a manifest violates. A
// ValidationError returned by this package always holds at least one
// violation.
type ValidationError struct {
	violations *multierror.Error
}

func newValidationError(messages ...string) *ValidationError {
	e := &ValidationError{}
	for _, msg := range messages {
		e.violations = multierror.Append(e.violations, errors.New(msg))
	}
	return e
}

// Violations returns the violation messages in the order they were found
func (e *ValidationError) Violations() []string {
	if e == nil || e.violations == nil {
		return nil
	}
	messages := make([]string, 0, len(e.violations.Errors))
	for _, err := range e.violations.Errors {
		messages = append(messages, err.Error())
	}
	return messages
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations(), "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As
func (e *ValidationError) Unwrap() []error {
	if e.violations == nil {
		return nil
	}
	return e.violations.WrappedErrors()
}

// AsValidationError returns the content validation failure wrapped in err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
