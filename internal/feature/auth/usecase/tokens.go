package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// newOpaqueToken は32バイトの乱数を64文字の16進文字列で返します。
func newOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
