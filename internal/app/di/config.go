// Package di はアプリケーションのコンポーネントを組み立てるファクトリを提供します。
package di

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	authusecase "estate_backend/internal/feature/auth/usecase"
	"estate_backend/internal/platform/cache"
)

// Config はフィーチャー横断のアプリケーション設定です。
type Config struct {
	SessionCookieName   string
	SessionCookieSecure bool
	SessionTTL          time.Duration
	CacheTTL            time.Duration
	AppBaseURL          string
	MediaScreening      bool
	AIRateLimit         int
	CORSOrigins         []string
}

// LoadConfigFromEnv は環境変数からConfigを読み込みます。未設定の項目は既定値になります。
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		SessionCookieName:   envOr("SESSION_COOKIE_NAME", authusecase.DefaultSessionCookie),
		SessionCookieSecure: os.Getenv("SESSION_COOKIE_SECURE") == "true",
		SessionTTL:          authusecase.DefaultSessionTTL,
		CacheTTL:            cache.DefaultTTL,
		AppBaseURL:          envOr("APP_BASE_URL", "http://localhost:8080"),
		MediaScreening:      os.Getenv("MEDIA_SCREENING") == "true",
		AIRateLimit:         10,
		CORSOrigins:         splitList(os.Getenv("CORS_ORIGINS")),
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", cfg.SessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", cfg.CacheTTL); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("AI_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid AI_RATE_LIMIT %q", v)
		}
		cfg.AIRateLimit = n
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// splitList はカンマ区切りの値を空要素を除いて分割します。
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
