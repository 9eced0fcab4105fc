// Package images is the image-storage collaborator: it accepts raw
// image bytes and hands back an opaque filesystem path. The note store
// keeps that path verbatim and never reads or validates the file.
package images

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrOutsideDir is returned by Remove for a path that does not live in
// the managed directory.
var ErrOutsideDir = errors.New("path is outside the image directory")

// Dir stores images as JPEG files in a single directory.
type Dir struct {
	path string
}

// NewDir creates the directory if needed and returns a Dir over it.
func NewDir(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve image dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Dir{path: abs}, nil
}

// Path returns the absolute directory path.
func (d *Dir) Path() string {
	return d.path
}

// Save writes data to a fresh IMG_<epoch-millis>.jpg file and returns
// its absolute path. Colliding timestamps get a numeric suffix.
func (d *Dir) Save(data []byte) (string, error) {
	millis := time.Now().UnixMilli()
	name := fmt.Sprintf("IMG_%d.jpg", millis)
	for suffix := 1; ; suffix++ {
		full := filepath.Join(d.path, name)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			name = fmt.Sprintf("IMG_%d_%d.jpg", millis, suffix)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("save image: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(full)
			return "", fmt.Errorf("save image: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(full)
			return "", fmt.Errorf("save image: %w", err)
		}
		return full, nil
	}
}

// Remove deletes a previously saved image. Paths outside the directory
// are refused; a file already gone is not an error.
func (d *Dir) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	if !strings.HasPrefix(abs, d.path+string(filepath.Separator)) {
		return ErrOutsideDir
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
