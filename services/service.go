package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cms-api/logger"
	"cms-api/mediastore"
	"cms-api/models"

	"gorm.io/gorm"
)

// guard turns a panic inside a service operation into a SYSTEM ERROR envelope.
// It must be deferred directly.
func guard[T any](log *logger.Logger, operation string, res *models.OperationResult[T]) {
	if r := recover(); r != nil {
		log.Error("service operation panicked", "operation", operation, "panic", r)
		var zero T
		*res = models.Resolve(http.StatusInternalServerError, zero, models.SystemError(fmt.Sprint(r)))
	}
}

// lookup classifies a repository read error.
func lookup(err error, missing string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NotFound(missing)
	}
	return err
}

// upload stores a new asset. Store failures are reported with their raw detail.
func upload(ctx context.Context, media mediastore.Client, payload string, preset mediastore.Preset) (*mediastore.Asset, error) {
	asset, err := media.Upload(ctx, payload, preset)
	if err != nil {
		return nil, models.SystemError(err.Error())
	}
	return asset, nil
}

// discard deletes an asset whose removal is not required for the operation
// to succeed. Failures are only logged.
func discard(ctx context.Context, log *logger.Logger, media mediastore.Client, assetID, reason string) {
	if assetID == "" {
		return
	}
	if err := media.Delete(ctx, assetID); err != nil {
		log.Warn("failed to delete media asset", "asset_id", assetID, "reason", reason, "error", err)
	}
}

// remove deletes an asset whose removal is required. A missing id is a no-op.
func remove(ctx context.Context, media mediastore.Client, assetID string) error {
	if assetID == "" {
		return nil
	}
	if err := media.Delete(ctx, assetID); err != nil {
		return models.SystemError(err.Error())
	}
	return nil
}
