package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signWith(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// TestVerifier_Verify は正しいトークンのクレームが取り出されることを検証します。
func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	tok, _, err := NewGenerator("secret", time.Hour).GenerateToken("u-1", "a@example.com", "sess-1")
	require.NoError(t, err)

	claims, err := NewVerifier("secret").Verify(tok)

	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "sess-1", claims.SessionID)
}

// TestVerifier_Verify_Invalid は不正なトークン（改ざん・期限切れ等）が拒否されることを検証します。
func TestVerifier_Verify_Invalid(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	wrongSecret, _, _ := NewGenerator("wrong-secret", time.Hour).GenerateToken("u-1", "a@example.com", "sess-1")
	expired, _, _ := NewGenerator(secret, -time.Hour).GenerateToken("u-1", "a@example.com", "sess-1")

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", wrongSecret},
		{"expired token", expired},
		{"numeric subject", signWith(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": 1, "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"none algorithm", signWith(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
			"sub": "u-1", "exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	v := NewVerifier(secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

// TestBearerToken はAuthorizationヘッダーからトークンを取り出せることを検証します。
func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer abc.def", "abc.def", true},
		{"empty header", "", "", false},
		{"basic auth", "Basic dXNlcjpwYXNz", "", false},
		{"bearer lowercase", "bearer token123", "", false},
		{"no space after Bearer", "Bearertoken123", "", false},
		{"blank token", "Bearer   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestLoadConfigFromEnv は環境変数からJWT設定が読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "s3cret")
	t.Setenv(EnvKeyJWTExpiration, "2h")

	cfg, err := LoadConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Expiration)
}

func TestLoadConfigFromEnv_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, "")
		_, err := LoadConfigFromEnv()
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
	t.Run("bad expiration", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, "s")
		t.Setenv(EnvKeyJWTExpiration, "tomorrow")
		_, err := LoadConfigFromEnv()
		assert.Error(t, err)
	})
}
