package mediastore

import (
	"context"
	"errors"
	"fmt"

	"cms-api/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore delegates image processing to Cloudinary upload presets.
type CloudinaryStore struct {
	cld     *cloudinary.Cloudinary
	presets map[Preset]string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig, presets config.PresetConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.Cloud, cfg.Key, cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{
		cld: cld,
		presets: map[Preset]string{
			PresetArticleCaption: presets.ArticleCaption,
			PresetAuthorPhoto:    presets.AuthorPhoto,
		},
	}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, payload string, preset Preset) (*Asset, error) {
	file, err := DataURI(payload)
	if err != nil {
		return nil, newUploadError("Invalid media payload", err)
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		UploadPreset: s.presets[preset],
	})
	if err != nil {
		return nil, newUploadError("Upload to cloudinary failed", err)
	}
	if resp.Error.Message != "" {
		return nil, newUploadError(resp.Error.Message)
	}
	if resp.PublicID == "" {
		return nil, newUploadError("Upload to cloudinary failed", errors.New("no public id returned"))
	}

	return &Asset{ID: resp.PublicID, URL: resp.SecureURL}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, assetID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return fmt.Errorf("failed to delete %s from cloudinary: %w", assetID, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("failed to delete %s from cloudinary: %s", assetID, resp.Error.Message)
	}
	switch resp.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("failed to delete %s from cloudinary: result %q", assetID, resp.Result)
	}
}
