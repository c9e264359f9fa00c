package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Repository provides whole-document persistence for the content document.
// Load returns a fresh copy; Save rewrites the document in full. Two
// overlapping load→mutate→save cycles can race and the later save wins;
// accepted for single-admin usage.
type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileRepository persists the document as pretty-printed JSON at a fixed path.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) (*Document, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("read content file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &doc, nil
}

// Save serializes the full document and replaces the backing file via a
// temp-file rename, so a crash mid-write never leaves a half-written document.
func (r *FileRepository) Save(ctx context.Context, doc *Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".content-*.json")
	if err != nil {
		return fmt.Errorf("create temp content file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp content file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp content file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp content file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace content file: %w", err)
	}
	return nil
}
