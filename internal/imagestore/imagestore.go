package imagestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the path the router serves saved images under.
const URLPrefix = "/images/products/"

// ErrUnsupportedFormat is returned for image extensions we do not accept.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Store saves product images on local disk under random filenames, so an
// uploaded name can never clobber an existing file or escape the directory.
type Store struct {
	dir string
}

// New creates the image directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory images are stored in, for static file serving.
func (s *Store) Dir() string { return s.dir }

// Save writes the image bytes under a fresh UUID filename and returns the
// public URL path.
func (s *Store) Save(data []byte, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png", "jpg", "jpeg", "webp":
	default:
		return "", ErrUnsupportedFormat
	}
	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes a previously saved image. URLs outside the store and
// already-deleted files are ignored.
func (s *Store) Remove(url string) error {
	name := strings.TrimPrefix(url, URLPrefix)
	if name == url || name == "" || strings.ContainsAny(name, "/\\") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
