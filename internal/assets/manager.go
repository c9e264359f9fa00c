package assets

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chinarfoundation/charity-site/pkg/logger"
)

// PublicPrefix is the URL prefix under which stored assets are reachable.
const PublicPrefix = "/images/"

// Manager applies upload policy, generates collision-resistant names, and
// handles replacement and deletion on top of a Store. The default asset (the
// shipped logo) is never deleted.
type Manager struct {
	store       Store
	defaultName string
}

func NewManager(store Store, defaultName string) *Manager {
	return &Manager{store: store, defaultName: defaultName}
}

// fileName strips the public prefix from an asset path, yielding the stored
// object name. Paths without the prefix are used as-is.
func fileName(assetPath string) string {
	return path.Base(strings.TrimPrefix(assetPath, PublicPrefix))
}

// newName derives a stored name from the current timestamp, a random
// component and the original extension. No registry lookup is needed; the
// random component makes collisions practically impossible.
func newName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// Save validates the upload against the policy, stores the bytes under a
// generated name and returns the public asset path. Nothing is written when
// the policy rejects.
func (m *Manager) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string, pol Policy) (string, error) {
	if !pol.Allowed(contentType) {
		return "", fmt.Errorf("%w: %s not accepted for %s", ErrWrongType, contentType, pol.Name)
	}
	if size > pol.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %s limit of %d", ErrTooLarge, size, pol.Name, pol.MaxBytes)
	}
	name := newName(originalName)
	if err := m.store.Put(ctx, name, r, size, contentType); err != nil {
		return "", err
	}
	return PublicPrefix + name, nil
}

// Replace stores the new asset, then best-effort deletes the superseded one.
// The default asset is never deleted, and a failed deletion is logged rather
// than escalated: the replacement succeeded, the stale file is just leaked.
func (m *Manager) Replace(ctx context.Context, oldPath, originalName string, r io.Reader, size int64, contentType string, pol Policy) (string, error) {
	newPath, err := m.Save(ctx, originalName, r, size, contentType, pol)
	if err != nil {
		return "", err
	}
	if oldPath != "" {
		old := fileName(oldPath)
		if old != m.defaultName {
			if err := m.store.Delete(ctx, old); err != nil {
				logger.Warnf("failed to delete superseded asset %s: %v", old, err)
			} else {
				logger.Infof("deleted superseded asset %s", old)
			}
		}
	}
	return newPath, nil
}

// Delete removes a stored asset. The default asset is refused regardless of
// caller intent.
func (m *Manager) Delete(ctx context.Context, assetPath string) error {
	name := fileName(assetPath)
	if name == m.defaultName {
		return fmt.Errorf("%w: %s", ErrProtected, name)
	}
	return m.store.Delete(ctx, name)
}

// Exists reports whether the asset at the given public path is stored.
func (m *Manager) Exists(ctx context.Context, assetPath string) (bool, error) {
	return m.store.Exists(ctx, fileName(assetPath))
}
