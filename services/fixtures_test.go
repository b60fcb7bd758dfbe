package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cms-api/config"
	"cms-api/logger"
	"cms-api/mediastore"
	"cms-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeMedia records every call and fails on demand.
type fakeMedia struct {
	mu        sync.Mutex
	seq       int
	assets    map[string]mediastore.Preset
	uploads   []mediastore.Preset
	deletes   []string
	uploadErr error
	deleteErr map[string]error
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{
		assets:    map[string]mediastore.Preset{},
		deleteErr: map[string]error{},
	}
}

func (f *fakeMedia) Upload(_ context.Context, payload string, preset mediastore.Preset) (*mediastore.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.uploads = append(f.uploads, preset)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.seq++
	id := fmt.Sprintf("%s/asset-%d", preset, f.seq)
	f.assets[id] = preset
	return &mediastore.Asset{ID: id, URL: "https://media.test/" + id}, nil
}

func (f *fakeMedia) Delete(_ context.Context, assetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, assetID)
	if err := f.deleteErr[assetID]; err != nil {
		return err
	}
	delete(f.assets, assetID)
	return nil
}

func (f *fakeMedia) has(assetID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.assets[assetID]
	return ok
}

func (f *fakeMedia) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeMedia) deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

func (f *fakeMedia) failUploads(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadErr = &mediastore.UploadError{Message: message, Errors: []string{"quota exceeded"}}
}

func (f *fakeMedia) failDelete(assetID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteErr[assetID] = errors.New("media store unavailable")
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	t.Cleanup(func() { config.CloseDB(db) })
	return db
}

func seedAuthor(t *testing.T, db *gorm.DB, media *fakeMedia, firstName string) *models.Author {
	t.Helper()
	asset, err := media.Upload(context.Background(), "photo", mediastore.PresetAuthorPhoto)
	require.NoError(t, err)
	author := &models.Author{Title: "Mx", FirstName: firstName, LastName: "Lovelace"}
	author.SetPhoto(asset.ID, asset.URL)
	require.NoError(t, db.Create(author).Error)
	return author
}

func seedArticle(t *testing.T, db *gorm.DB, media *fakeMedia, authorID, title string, tags ...string) *models.Article {
	t.Helper()
	asset, err := media.Upload(context.Background(), "caption", mediastore.PresetArticleCaption)
	require.NoError(t, err)
	article := &models.Article{
		AuthorID:    authorID,
		Title:       title,
		Description: title + " description",
		Content:     title + " content",
		Tags:        models.JoinTags(tags),
	}
	article.SetImage(asset.ID, asset.URL)
	require.NoError(t, db.Create(article).Error)
	return article
}

// touch pins updated_at so list ordering is deterministic.
func touch(t *testing.T, db *gorm.DB, model interface{}, id string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(model).Where("id = ?", id).UpdateColumn("updated_at", at).Error)
}

func testLogger() *logger.Logger {
	return logger.Nop()
}
