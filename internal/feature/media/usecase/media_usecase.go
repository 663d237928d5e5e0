// Package usecase はmediaフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"estate_backend/internal/feature/media/domain/entity"
)

const (
	// MaxFileSize は1ファイルあたりの上限（25MiB）です。
	MaxFileSize = 25 << 20
	// DefaultConcurrency は同時アップロード数の既定値です。
	DefaultConcurrency = 4
)

// MediaStore はメディアを保存し公開URLを返すストレージです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MediaStore interface {
	Upload(ctx context.Context, f entity.MediaFile, r io.Reader) (string, error)
}

// Screener は画像の内容を検査します。不適切な場合 ErrRejectedContent を返します。
type Screener interface {
	Screen(ctx context.Context, imageData []byte) error
}

type mediaUsecase struct {
	store       MediaStore
	screener    Screener
	concurrency int
}

// NewMediaUsecase はmediaUsecaseの新しいインスタンスを生成します。screener は nil でも構いません。
func NewMediaUsecase(store MediaStore, screener Screener, concurrency int) *mediaUsecase {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &mediaUsecase{store: store, screener: screener, concurrency: concurrency}
}

// Validate はネットワーク呼び出し前にファイルを検証します。
func Validate(f entity.MediaFile) error {
	if f.Kind() == entity.KindUnknown {
		return fmt.Errorf("%s: %w (%q)", f.Name, ErrUnsupportedType, f.ContentType)
	}
	if f.Size > MaxFileSize {
		return fmt.Errorf("%s: %w (%d bytes, max %d)", f.Name, ErrFileTooLarge, f.Size, MaxFileSize)
	}
	if f.Size == 0 {
		return fmt.Errorf("%s: %w", f.Name, ErrEmptyFile)
	}
	return nil
}

// UploadAll は files を並行してアップロードします。
// 1件の失敗は他のアップロードを取り消さず、結果のURLは入力順に並びます。
func (u *mediaUsecase) UploadAll(ctx context.Context, files []entity.MediaFile) (*entity.UploadResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))
	rejected := make([]bool, len(files))

	// 各goroutineは常にnilを返すので、WithContextによる打ち切りは使いません。
	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, f := range files {
		if err := Validate(f); err != nil {
			errs[i], rejected[i] = err, true
			continue
		}
		g.Go(func() error {
			url, err := u.uploadOne(ctx, f)
			if err != nil {
				errs[i] = err
				rejected[i] = errors.Is(err, ErrRejectedContent)
				return nil
			}
			urls[i] = url
			return nil
		})
	}
	_ = g.Wait()

	res := &entity.UploadResult{URLs: make([]string, 0, len(files))}
	for i, f := range files {
		if errs[i] != nil {
			slog.Warn("media upload failed", "file", f.Name, "error", errs[i])
			res.Failures = append(res.Failures, entity.UploadFailure{File: f.Name, Err: errs[i], Rejected: rejected[i]})
			continue
		}
		res.URLs = append(res.URLs, urls[i])
	}
	return res, nil
}

func (u *mediaUsecase) uploadOne(ctx context.Context, f entity.MediaFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("%s: failed to open: %w", f.Name, err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.Warn("failed to close media file", "file", f.Name, "error", err)
		}
	}()

	var r io.Reader = rc
	if u.screener != nil && f.Kind() == entity.KindImage {
		data, err := io.ReadAll(io.LimitReader(rc, MaxFileSize+1))
		if err != nil {
			return "", fmt.Errorf("%s: failed to read: %w", f.Name, err)
		}
		if err := u.screener.Screen(ctx, data); err != nil {
			return "", fmt.Errorf("%s: %w", f.Name, err)
		}
		r = bytes.NewReader(data)
	}

	url, err := u.store.Upload(ctx, f, r)
	if err != nil {
		return "", fmt.Errorf("%s: failed to upload %s: %w", f.Name, f.Kind(), err)
	}
	return url, nil
}
