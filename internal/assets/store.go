package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store persists asset binaries under generated names. Implementations: local
// disk (default) and MinIO-compatible object storage.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// DiskStore keeps assets as plain files in a single directory, which is also
// the directory the HTTP layer serves statically.
type DiskStore struct {
	root string
}

// NewDiskStore creates the asset directory if needed.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create asset file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		// never leave a half-written asset behind
		_ = os.Remove(f.Name())
		return fmt.Errorf("write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("close asset file: %w", err)
	}
	return nil
}

func (s *DiskStore) Delete(ctx context.Context, name string) error {
	if err := os.Remove(filepath.Join(s.root, name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("delete asset file: %w", err)
	}
	return nil
}

func (s *DiskStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
