// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation は PostgreSQL のユニーク制約違反コードです。
const pgUniqueViolation = "23505"

// isUniqueViolation はユニーク制約違反を判定します。
// 通常は TranslateError 済みの gorm.ErrDuplicatedKey で判定し、
// 変換されずに届いた PostgreSQL のエラーはコードで判定します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
