// Package filestore keeps pickup evidence images on the local filesystem and reads
// camera frames from it.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// ErrPathOutsideRoot is returned for a path that escapes the storage root.
var ErrPathOutsideRoot = errors.New("evidence path is outside the storage root")

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// LocalStorage implements ports.EvidenceStorage. Returned paths are slash separated and
// relative to the root, e.g. "photos/<package id>-<file id>.png".
type LocalStorage struct {
	root string
}

// NewLocalStorage creates the storage rooted at root, creating the directory if needed.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("storage root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &LocalStorage{root: abs}, nil
}

// Save writes the file under a fresh name through a temporary file and a rename, so a
// reader never sees a partial image.
func (s *LocalStorage) Save(
	ctx context.Context,
	kind ports.EvidenceKind,
	packageID kernel.UUID,
	file ports.EvidenceFile,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if kind != ports.PhotoEvidence && kind != ports.SignatureEvidence {
		return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("unknown evidence kind %q", kind))
	}

	ext, ok := extensions[file.ContentType]
	if !ok {
		ext = ".bin"
	}
	rel := string(kind) + "/" + packageID.String() + "-" + kernel.NewUUID().String() + ext

	dir := filepath.Join(s.root, string(kind))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", kind, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary evidence file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(file.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing evidence file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing evidence file: %w", err)
	}
	if err = os.Rename(tmpPath, filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("renaming evidence file into place: %w", err)
	}

	return rel, nil
}

// Open returns an ObjectNotFoundError when no file is stored at path.
func (s *LocalStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewObjectNotFoundError("evidence", path)
	}
	return f, err
}

// Remove deletes the file. A missing file is not an error.
func (s *LocalStorage) Remove(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) resolve(path string) (string, error) {
	local := filepath.FromSlash(path)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideRoot, path)
	}
	return filepath.Join(s.root, local), nil
}
