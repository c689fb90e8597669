package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageStore persists uploaded files under a configured root directory and
// serves them back as /uploads/<name> resource paths.
type ImageStore struct {
	root string
}

// NewImageStore creates a store rooted at dir. The directory itself is
// created lazily on first write.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{root: dir}
}

// Root returns the configured uploads root directory.
func (s *ImageStore) Root() string {
	return s.root
}

// Store writes the file to disk under a generated collision-free name and
// returns its public relative path. A failed write removes the partial file
// so the caller never persists a dangling path.
func (s *ImageStore) Store(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := generateName(originalName)
	dst := filepath.Join(s.root, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a previously stored file given its public relative path.
// Only the base name is honored so a crafted path cannot escape the root.
func (s *ImageStore) Remove(relPath string) error {
	name := path.Base(relPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.root, name))
}

// generateName builds a unique filename from a nanosecond timestamp plus a
// random component, keeping the original extension. Concurrent uploads never
// collide.
func generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
