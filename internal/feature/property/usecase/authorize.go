package usecase

import (
	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/shared/identity"
)

// Decision は所有者チェックの結果です。
type Decision int

const (
	Allowed Decision = iota
	Forbidden
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Authorize は caller が p を変更できるかを判定します。
// p が nil なら NotFound、所有者以外（未認証を含む）は Forbidden です。
func Authorize(caller *identity.Identity, p *entity.Property) Decision {
	if p == nil {
		return NotFound
	}
	if !caller.Owns(p.UserID) {
		return Forbidden
	}
	return Allowed
}
