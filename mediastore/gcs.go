package mediastore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cms-api/config"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GCSStore writes rendered images into a Google Cloud Storage bucket.
type GCSStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

func NewGCSStore(ctx context.Context, cfg config.GCSConfig) (*GCSStore, error) {
	client, err := storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GCSStore{client: client, bucket: cfg.Bucket, publicBaseURL: base}, nil
}

func (s *GCSStore) Upload(ctx context.Context, payload string, preset Preset) (*Asset, error) {
	data, err := decodeAndPrepare(payload, preset)
	if err != nil {
		return nil, err
	}
	key := objectKey(preset, uuid.NewString())

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return nil, newUploadError("Upload to GCS failed", err)
	}
	if err := w.Close(); err != nil {
		return nil, newUploadError("Upload to GCS failed", err)
	}

	return &Asset{ID: key, URL: s.publicBaseURL + "/" + key}, nil
}

func (s *GCSStore) Delete(ctx context.Context, assetID string) error {
	err := s.client.Bucket(s.bucket).Object(assetID).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete %s from GCS: %w", assetID, err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
