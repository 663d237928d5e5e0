// Package usecase はlistingcopyフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"estate_backend/internal/feature/listingcopy/domain/entity"
	"estate_backend/internal/shared/ratelimiter"
)

// FallbackText は生成結果が空だった場合に返す文言です。
const FallbackText = "No description available"

// TextGenerator はプロンプトから文章を生成します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type listingCopyUsecase struct {
	generator TextGenerator
	limiter   ratelimiter.RateLimiterInterface
}

// NewListingCopyUsecase はlistingCopyUsecaseの新しいインスタンスを生成します。limiter は nil でも構いません。
func NewListingCopyUsecase(generator TextGenerator, limiter ratelimiter.RateLimiterInterface) *listingCopyUsecase {
	return &listingCopyUsecase{generator: generator, limiter: limiter}
}

// Optimize は物件情報から説明文を生成します。再試行はしません。
func (u *listingCopyUsecase) Optimize(ctx context.Context, facts entity.Facts) (string, error) {
	if !facts.HasMinimum() {
		return "", ErrInsufficientFacts
	}

	if u.limiter != nil {
		if err := u.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	raw, err := u.generator.Generate(ctx, BuildPrompt(facts))
	if err != nil {
		return "", fmt.Errorf("text generator failed: %w", err)
	}

	text := CleanText(raw)
	if text == "" {
		return FallbackText, nil
	}
	return text, nil
}
