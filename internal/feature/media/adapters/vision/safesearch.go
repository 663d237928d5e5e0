// Package vision はGoogle Cloud Vision APIを使用した画像スクリーニングを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"estate_backend/internal/feature/media/usecase"
)

// SafeSearchScreener はSafeSearch検出で成人向け・暴力的な画像を弾きます。
type SafeSearchScreener struct {
	client *gvision.ImageAnnotatorClient
}

// SafeSearchScreenerがScreenerを実装していることをコンパイル時に検証します。
var _ usecase.Screener = (*SafeSearchScreener)(nil)

// NewSafeSearchScreener はADCを使用してSafeSearchScreenerの新しいインスタンスを生成します。
func NewSafeSearchScreener(ctx context.Context) (*SafeSearchScreener, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &SafeSearchScreener{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (s *SafeSearchScreener) Close() error {
	return s.client.Close()
}

// Screen は画像を検査し、不適切な場合 usecase.ErrRejectedContent を返します。
func (s *SafeSearchScreener) Screen(ctx context.Context, imageData []byte) error {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := s.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return fmt.Errorf("vision API request failed: %w", err)
	}
	return judge(resp)
}

// judge はSafeSearchの判定結果を評価します。アノテーションがなければ通過させます。
func judge(resp *visionpb.BatchAnnotateImagesResponse) error {
	if resp == nil || len(resp.Responses) == 0 {
		return nil
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return fmt.Errorf("vision API error: %s", r.Error.Message)
	}
	ss := r.SafeSearchAnnotation
	if ss == nil {
		return nil
	}
	for category, l := range map[string]visionpb.Likelihood{
		"adult":    ss.Adult,
		"violence": ss.Violence,
		"racy":     ss.Racy,
	} {
		if l >= visionpb.Likelihood_LIKELY {
			return fmt.Errorf("%w: %s is %s", usecase.ErrRejectedContent, category, l)
		}
	}
	return nil
}
