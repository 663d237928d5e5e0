package cloudinary

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_backend/internal/feature/media/domain/entity"
)

type fakeUploadAPI struct {
	gotParams uploader.UploadParams
	gotBody   string
	result    *uploader.UploadResult
	err       error
}

func (f *fakeUploadAPI) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.gotParams = params
	if r, ok := file.(io.Reader); ok {
		b, _ := io.ReadAll(r)
		f.gotBody = string(b)
	}
	return f.result, f.err
}

func TestUploadParams(t *testing.T) {
	img := uploadParams(entity.KindImage)
	assert.Equal(t, "property-images", img.Folder)
	assert.Equal(t, "image", img.ResourceType)
	assert.Equal(t, "webp", img.Format)
	assert.Equal(t, "q_auto,w_1200,h_800,c_limit", img.Transformation)

	vid := uploadParams(entity.KindVideo)
	assert.Equal(t, "property-videos", vid.Folder)
	assert.Equal(t, "video", vid.ResourceType)
	assert.Equal(t, "mp4", vid.Format)
	assert.Equal(t, "q_auto,w_1280,h_720,c_limit", vid.Transformation)
}

func TestCloudinaryStore_Upload(t *testing.T) {
	video := entity.MediaFile{Name: "tour.mp4", ContentType: "video/mp4", Size: 4}

	t.Run("success", func(t *testing.T) {
		fake := &fakeUploadAPI{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/tour.mp4"}}
		s := &CloudinaryStore{api: fake}

		url, err := s.Upload(context.Background(), video, strings.NewReader("data"))

		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/tour.mp4", url)
		assert.Equal(t, "data", fake.gotBody)
		assert.Equal(t, "property-videos", fake.gotParams.Folder)
	})

	t.Run("transport error", func(t *testing.T) {
		s := &CloudinaryStore{api: &fakeUploadAPI{err: errors.New("dial tcp: timeout")}}

		_, err := s.Upload(context.Background(), video, strings.NewReader("data"))

		assert.ErrorContains(t, err, "cloudinary upload failed")
	})

	t.Run("api error in body", func(t *testing.T) {
		s := &CloudinaryStore{api: &fakeUploadAPI{result: &uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}}

		_, err := s.Upload(context.Background(), video, strings.NewReader("data"))

		assert.ErrorContains(t, err, "Invalid image file")
	})

	t.Run("empty url", func(t *testing.T) {
		s := &CloudinaryStore{api: &fakeUploadAPI{result: &uploader.UploadResult{}}}

		_, err := s.Upload(context.Background(), video, strings.NewReader("data"))

		assert.Error(t, err)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvKeyCloudName, "demo")
	t.Setenv(EnvKeyAPIKey, "key")
	t.Setenv(EnvKeyAPISecret, "")

	_, err := LoadConfigFromEnv()
	assert.ErrorIs(t, err, ErrMissingCredentials)

	t.Setenv(EnvKeyAPISecret, "secret")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{CloudName: "demo", APIKey: "key", APISecret: "secret"}, cfg)
}
