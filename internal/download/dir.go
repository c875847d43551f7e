// Package download saves exported survey documents to the local filesystem.
package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/kailas-cloud/surveyfront/internal/domain/survey"
)

// ErrInvalidFilename signals a filename that is empty or would leave the target directory.
var ErrInvalidFilename = errors.New("invalid download filename")

// Dir is a sink that writes artifacts into a directory. A file is either
// absent or complete; partial downloads never appear under the final name.
type Dir struct {
	path string
}

// NewDir creates a sink for path. The directory is created on first save.
func NewDir(path string) *Dir {
	return &Dir{path: filepath.Clean(path)}
}

// Save implements export.Sink.
func (d *Dir) Save(ctx context.Context, a survey.Artifact) (string, error) {
	name, err := cleanName(a.Filename)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.MkdirAll(d.path, 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", d.path, err)
	}

	target := filepath.Join(d.path, name)
	if err := atomic.WriteFile(target, a.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

func cleanName(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return name, nil
}

// Check implements health.DirChecker: the directory must exist (or be
// creatable) and accept new files.
func (d *Dir) Check(_ context.Context) error {
	if err := os.MkdirAll(d.path, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", d.path, err)
	}
	f, err := os.CreateTemp(d.path, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("create check file in %s: %w", d.path, err)
	}
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("remove check file: %w", err)
	}
	return nil
}
