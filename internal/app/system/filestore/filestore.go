// internal/app/system/filestore/filestore.go

// Package filestore stores uploaded solution PDFs. Two backends:
// S3-compatible object storage (MinIO) for deployments, and a local
// directory for dev and tests.
package filestore

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// MaxPDFBytes caps solution uploads at 10 MB.
const MaxPDFBytes = 10 << 20

// ErrNotPDF is returned when an upload is not a PDF.
var ErrNotPDF = errors.New("file must be a PDF")

// Store persists uploaded files and hands back a URL the stored
// document can be fetched from.
type Store interface {
	// SavePDF stores the reader's contents under a generated key and
	// returns the public URL. filename is used only for the key suffix.
	SavePDF(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
}

// pdfKey builds a collision-free object key keeping the original
// extension visible.
func pdfKey(filename string) string {
	base := path.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "upload.pdf"
	}
	return "solutions/" + uuid.NewString() + "-" + base
}

// looksLikePDF checks the filename extension. Content sniffing is
// deliberately skipped: the files are served back with a PDF content
// type and never executed.
func looksLikePDF(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".pdf")
}
