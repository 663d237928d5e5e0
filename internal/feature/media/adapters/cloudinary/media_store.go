// Package cloudinary はCloudinaryを使用したメディアストアを提供します。
package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"estate_backend/internal/feature/media/domain/entity"
	"estate_backend/internal/feature/media/usecase"
)

const (
	ImageFolder = "property-images"
	VideoFolder = "property-videos"

	// サーバー側で縮小・変換し、品質は自動にします。
	imageTransformation = "q_auto,w_1200,h_800,c_limit"
	videoTransformation = "q_auto,w_1280,h_720,c_limit"
)

// uploadAPI は *uploader.API のうち使用するメソッドだけを切り出したものです。
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryStore はCloudinaryにメディアをアップロードします。
type CloudinaryStore struct {
	api uploadAPI
}

// CloudinaryStoreがMediaStoreを実装していることをコンパイル時に検証します。
var _ usecase.MediaStore = (*CloudinaryStore)(nil)

// NewCloudinaryStore は認証情報からCloudinaryStoreを生成します。
func NewCloudinaryStore(cfg Config) (*CloudinaryStore, error) {
	c, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStore{api: &c.Upload}, nil
}

// uploadParams は種別ごとのアップロードパラメータを返します。
func uploadParams(kind entity.Kind) uploader.UploadParams {
	if kind == entity.KindVideo {
		return uploader.UploadParams{
			Folder:         VideoFolder,
			ResourceType:   "video",
			Format:         "mp4",
			Transformation: videoTransformation,
		}
	}
	return uploader.UploadParams{
		Folder:         ImageFolder,
		ResourceType:   "image",
		Format:         "webp",
		Transformation: imageTransformation,
	}
}

// Upload は r の内容をアップロードし、HTTPSの公開URLを返します。
func (s *CloudinaryStore) Upload(ctx context.Context, f entity.MediaFile, r io.Reader) (string, error) {
	resp, err := s.api.Upload(ctx, r, uploadParams(f.Kind()))
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary returned no result")
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary error: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary returned an empty url")
	}
	return resp.SecureURL, nil
}
