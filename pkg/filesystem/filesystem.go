// Package filesystem provides the file access capability used to read skill
// manifests. It is backed by afero so callers can swap the real operating
// system filesystem for an in-memory one.
package filesystem

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileSystem is the minimal file access surface needed to read and write
// text files by path.
type FileSystem interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
	WriteText(path, text string) error
}

// AferoFS implements FileSystem on top of an afero.Fs
type AferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem
func New(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// NewOS returns a FileSystem backed by the operating system
func NewOS() *AferoFS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory FileSystem
func NewMemory() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Exists reports whether a file or directory exists at path. Stat failures
// other than "not exist" are treated as absent.
func (a *AferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}

// ReadText reads the whole file at path as a string
func (a *AferoFS) ReadText(path string) (string, error) {
	content, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(content), nil
}

// WriteText writes text to path, creating missing parent directories
func (a *AferoFS) WriteText(path, text string) error {
	if err := a.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := afero.WriteFile(a.fs, path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
