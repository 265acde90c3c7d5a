// internal/app/system/filestore/local.go
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore implements Store on a local directory. Used in dev and
// tests; stored files are served from /uploads/.
type LocalStore struct {
	dir  string
	base string
}

// NewLocalStore stores files under dir and builds URLs from base
// (e.g. "/uploads").
func NewLocalStore(dir, base string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "solutions"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, base: base}, nil
}

func (s *LocalStore) SavePDF(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if !looksLikePDF(filename) {
		return "", ErrNotPDF
	}
	if size > MaxPDFBytes {
		return "", fmt.Errorf("file exceeds %d bytes", MaxPDFBytes)
	}

	key := pdfKey(filename)
	dst := filepath.Join(s.dir, filepath.FromSlash(key))

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxPDFBytes)); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.base + "/" + key, nil
}
