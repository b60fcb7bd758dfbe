package mediastore

import (
	"context"
	"io"

	"cms-api/metrics"
)

type instrumented struct {
	next Client
}

// Instrument counts uploads and deletes on next by outcome.
func Instrument(next Client) Client {
	return &instrumented{next: next}
}

func (i *instrumented) Upload(ctx context.Context, payload string, preset Preset) (*Asset, error) {
	asset, err := i.next.Upload(ctx, payload, preset)
	metrics.MediaOperations.WithLabelValues("upload", outcome(err)).Inc()
	return asset, err
}

func (i *instrumented) Delete(ctx context.Context, assetID string) error {
	err := i.next.Delete(ctx, assetID)
	metrics.MediaOperations.WithLabelValues("delete", outcome(err)).Inc()
	return err
}

// Close releases the wrapped backend if it holds a connection.
func (i *instrumented) Close() error {
	if c, ok := i.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
