package cloudinary

import (
	"errors"
	"os"
)

const (
	EnvKeyCloudName = "CLOUDINARY_CLOUD_NAME"
	EnvKeyAPIKey    = "CLOUDINARY_API_KEY"
	EnvKeyAPISecret = "CLOUDINARY_API_SECRET"
)

// ErrMissingCredentials はCloudinaryの認証情報が揃っていない場合のエラーです。
var ErrMissingCredentials = errors.New("cloudinary credentials are not configured")

// Config はCloudinaryの接続設定です。
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

// LoadConfigFromEnv は環境変数から設定を読み込みます。
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		CloudName: os.Getenv(EnvKeyCloudName),
		APIKey:    os.Getenv(EnvKeyAPIKey),
		APISecret: os.Getenv(EnvKeyAPISecret),
	}
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return cfg, ErrMissingCredentials
	}
	return cfg, nil
}
