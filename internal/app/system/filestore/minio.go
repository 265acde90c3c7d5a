// internal/app/system/filestore/minio.go
package filestore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOConfig holds object storage settings.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string

	// PublicBaseURL is the prefix stored URLs are built from, e.g.
	// "https://files.syneroa.org". Defaults to the endpoint.
	PublicBaseURL string
}

// MinIOStore implements Store on S3-compatible object storage.
type MinIOStore struct {
	client *minio.Client
	bucket string
	base   string
}

func NewMinIOStore(cfg MinIOConfig) (*MinIOStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" {
		return nil, fmt.Errorf("minio access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio secret key is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client failed: %w", err)
	}

	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}

	return &MinIOStore{client: client, bucket: cfg.Bucket, base: base}, nil
}

func (s *MinIOStore) SavePDF(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if !looksLikePDF(filename) {
		return "", ErrNotPDF
	}
	if size > MaxPDFBytes {
		return "", fmt.Errorf("file exceeds %d bytes", MaxPDFBytes)
	}

	key := pdfKey(filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("minio put object failed: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.base, s.bucket, key), nil
}
