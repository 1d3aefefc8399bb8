package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"blogapi/apperrors"
)

// BlobStore holds uploaded images behind opaque string keys. Delete of a
// missing key is not an error.
type BlobStore interface {
	Store(name string, data io.Reader) (string, error)
	Delete(key string) error
}

// DiskStore keeps blobs as files under a base directory. Keys are generated,
// never derived from caller input, so they are safe to join with the base.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Store writes the blob and returns its key. The original file name only
// contributes its extension.
func (s *DiskStore) Store(name string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.baseDir, key))
	if err != nil {
		return "", &apperrors.BlobError{Op: "store", Key: key, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(f.Name())
		return "", &apperrors.BlobError{Op: "store", Key: key, Err: err}
	}

	return key, nil
}

// Delete removes the blob. Deleting a key that no longer exists succeeds.
func (s *DiskStore) Delete(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return &apperrors.BlobError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
