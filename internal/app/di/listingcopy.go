package di

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"estate_backend/internal/feature/listingcopy/adapters/gemini"
	"estate_backend/internal/feature/listingcopy/usecase"
	"estate_backend/internal/shared/ratelimiter"
)

var errGeneratorDisabled = errors.New("text generator is not configured")

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, string) (string, error) {
	return "", errGeneratorDisabled
}

// NewTextGenerator はGemini APIの生成クライアントを返します。生成できない場合は常に失敗する実装を返します。
func NewTextGenerator(ctx context.Context) usecase.TextGenerator {
	g, err := gemini.NewGeminiGenerator(ctx, gemini.LoadConfigFromEnv())
	if err != nil {
		slog.Warn("gemini unavailable; ai-optimize will fail", "error", err)
		return disabledGenerator{}
	}
	return g
}

// NewAIRateLimiter は1分あたり perMinute 回に生成呼び出しを制限します。
func NewAIRateLimiter(perMinute int) *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(perMinute, time.Minute)
}
