package mediastore

import (
	"context"
	"fmt"

	"cms-api/config"
)

// New builds the configured backend wrapped with metrics.
func New(ctx context.Context, cfg config.MediaConfig) (Client, error) {
	var (
		client Client
		err    error
	)
	switch cfg.Driver {
	case "cloudinary":
		client, err = NewCloudinaryStore(cfg.Cloudinary, cfg.Presets)
	case "minio":
		client, err = NewMinIOStore(ctx, cfg.MinIO)
	case "gcs":
		client, err = NewGCSStore(ctx, cfg.GCS)
	case "memory":
		client = NewMemory()
	default:
		err = fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(client), nil
}
