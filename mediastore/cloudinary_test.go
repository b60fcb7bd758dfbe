package mediastore

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cms-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudinary struct {
	mu      sync.Mutex
	presets []string
	status  int
	body    string
}

func (f *fakeCloudinary) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(10 << 20)
	f.mu.Lock()
	f.presets = append(f.presets, r.FormValue("upload_preset"))
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case body != "":
	case strings.HasSuffix(r.URL.Path, "/destroy"):
		body = `{"result":"not found"}`
	default:
		body = `{"public_id":"cms/abc123","secure_url":"https://res.cloudinary.test/cms/abc123.jpg"}`
	}
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestCloudinary(t *testing.T, fake *fakeCloudinary) *CloudinaryStore {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewCloudinaryStore(
		config.CloudinaryConfig{Cloud: "demo", Key: "key", Secret: "secret"},
		config.PresetConfig{ArticleCaption: "cms_caption", AuthorPhoto: "cms_photo"},
	)
	require.NoError(t, err)
	store.cld.Config.API.UploadPrefix = srv.URL
	return store
}

func TestCloudinaryUploadUsesPreset(t *testing.T) {
	fake := &fakeCloudinary{}
	store := newTestCloudinary(t, fake)

	asset, err := store.Upload(context.Background(), base64.StdEncoding.EncodeToString(testPNG(t, 4, 4)), PresetAuthorPhoto)
	require.NoError(t, err)
	assert.Equal(t, "cms/abc123", asset.ID)
	assert.Equal(t, "https://res.cloudinary.test/cms/abc123.jpg", asset.URL)
	assert.Contains(t, fake.presets, "cms_photo")
}

func TestCloudinaryUploadFailure(t *testing.T) {
	fake := &fakeCloudinary{status: http.StatusBadRequest, body: `{"error":{"message":"Upload preset not found"}}`}
	store := newTestCloudinary(t, fake)

	_, err := store.Upload(context.Background(), base64.StdEncoding.EncodeToString(testPNG(t, 4, 4)), PresetArticleCaption)
	var uploadErr *UploadError
	assert.True(t, errors.As(err, &uploadErr))
}

func TestCloudinaryUploadRejectsBadPayload(t *testing.T) {
	fake := &fakeCloudinary{}
	store := newTestCloudinary(t, fake)

	_, err := store.Upload(context.Background(), "***", PresetArticleCaption)
	var uploadErr *UploadError
	require.True(t, errors.As(err, &uploadErr))
	assert.Equal(t, "Invalid media payload", uploadErr.Message)
	assert.Empty(t, fake.presets)
}

func TestCloudinaryDeleteMissingIsSuccess(t *testing.T) {
	store := newTestCloudinary(t, &fakeCloudinary{})

	assert.NoError(t, store.Delete(context.Background(), "cms/gone"))
}
