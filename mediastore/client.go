// Package mediastore uploads and deletes image assets on a remote media host.
// Assets are addressed by an opaque id and served from a public URL.
package mediastore

import (
	"context"
	"encoding/json"
)

// Preset selects how an upload is processed and where it is filed.
type Preset string

const (
	PresetArticleCaption Preset = "article_caption"
	PresetAuthorPhoto    Preset = "author_photo"
)

// Asset is a stored media object.
type Asset struct {
	ID  string
	URL string
}

// Client is the media-store capability the services depend on. Delete of an
// asset that no longer exists succeeds.
type Client interface {
	Upload(ctx context.Context, payload string, preset Preset) (*Asset, error)
	Delete(ctx context.Context, assetID string) error
}

// UploadError carries the store's own description of a failed upload.
type UploadError struct {
	Message string
	Errors  []string
}

func (e *UploadError) Error() string {
	errs := e.Errors
	if errs == nil {
		errs = []string{}
	}
	detail, _ := json.Marshal(errs)
	return e.Message + "\n" + string(detail)
}

func newUploadError(message string, errs ...error) *UploadError {
	ue := &UploadError{Message: message, Errors: []string{}}
	for _, err := range errs {
		if err != nil {
			ue.Errors = append(ue.Errors, err.Error())
		}
	}
	return ue
}
