package di

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"estate_backend/internal/feature/media/adapters/cloudinary"
	"estate_backend/internal/feature/media/adapters/vision"
	"estate_backend/internal/feature/media/domain/entity"
	"estate_backend/internal/feature/media/usecase"
)

// errMediaStoreDisabled はCloudinaryが未設定のときアップロードを拒否するためのエラーです。
var errMediaStoreDisabled = errors.New("media store is not configured")

type disabledStore struct{}

func (disabledStore) Upload(context.Context, entity.MediaFile, io.Reader) (string, error) {
	return "", errMediaStoreDisabled
}

// NewMediaStore はCloudinaryストアを生成します。認証情報がない場合は常に失敗するストアを返します。
func NewMediaStore() usecase.MediaStore {
	cfg, err := cloudinary.LoadConfigFromEnv()
	if err != nil {
		slog.Warn("cloudinary unavailable; uploads will fail", "error", err)
		return disabledStore{}
	}
	store, err := cloudinary.NewCloudinaryStore(cfg)
	if err != nil {
		slog.Warn("cloudinary unavailable; uploads will fail", "error", err)
		return disabledStore{}
	}
	return store
}

// NewScreener は screening が有効ならVision SafeSearchのスクリーナーを返します。
// 返り値の close は常に呼び出し可能です。
func NewScreener(ctx context.Context, enabled bool) (usecase.Screener, func()) {
	if !enabled {
		return nil, func() {}
	}
	s, err := vision.NewSafeSearchScreener(ctx)
	if err != nil {
		slog.Warn("vision unavailable; media screening disabled", "error", err)
		return nil, func() {}
	}
	return s, func() {
		if err := s.Close(); err != nil {
			slog.Warn("failed to close vision client", "error", err)
		}
	}
}
