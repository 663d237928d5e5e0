// Package db はプロセス全体で共有するGORM接続を構築します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverPostgres は本番用のPostgreSQLドライバー名です。
	DriverPostgres = "postgres"
	// DriverSQLite はローカル開発・テスト用のSQLiteドライバー名です。
	DriverSQLite = "sqlite"

	defaultConnectTimeout = 60 * time.Second
)

// retryInterval は接続リトライの最大待機間隔です。
var retryInterval = 3 * time.Second

// ErrMissingDatabaseURL は DATABASE_URL が未設定の場合に返されます。起動時の致命的エラーです。
var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not defined")

// Config はデータベース接続設定です。
type Config struct {
	Driver         string
	URL            string
	RunMigrations  bool
	ConnectTimeout time.Duration
}

// Opener は DSN から *gorm.DB を開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
// postgres ドライバーで DATABASE_URL が空の場合は ErrMissingDatabaseURL を返します。
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Driver:         strings.ToLower(os.Getenv("DB_DRIVER")),
		URL:            os.Getenv("DATABASE_URL"),
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
		ConnectTimeout: defaultConnectTimeout,
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ConnectTimeout = d
		}
	}

	switch cfg.Driver {
	case DriverPostgres:
		if cfg.URL == "" {
			return Config{}, ErrMissingDatabaseURL
		}
	case DriverSQLite:
		if cfg.URL == "" {
			// SQLiteは接続ごとに外部キー制約を有効化する必要がある
			cfg.URL = "./estate.db?_foreign_keys=on"
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}

// GormConfig は全ドライバー共通のGORM設定です。
// TranslateError によりユニーク制約違反などはドライバーに依らず gorm.ErrDuplicatedKey 等に変換されます。
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

// NewOpener はドライバー名に対応する Opener を返します。
func NewOpener(driver string) Opener {
	gcfg := GormConfig()
	if driver == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), gcfg)
	}
}

// ConnectWithRetry は timeout に達するまで接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB は設定に従って接続し、必要に応じてマイグレーションを実行します。
// 返される *gorm.DB はプロセスで1つだけ生成し、各リポジトリに注入します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(cfg.URL, cfg.ConnectTimeout, NewOpener(cfg.Driver))
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}
