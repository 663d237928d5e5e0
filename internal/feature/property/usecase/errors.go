// Package usecase はpropertyフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUnauthorized is returned when a mutating operation is called without an identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller does not own the property.
	ErrForbidden = errors.New("forbidden")

	// ErrPropertyNotFound is returned when no property has the given id.
	ErrPropertyNotFound = errors.New("property not found")
)
