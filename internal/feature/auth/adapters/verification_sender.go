package adapters

import (
	"context"
	"log/slog"
	"net/url"

	"estate_backend/internal/feature/auth/usecase"
)

// logVerificationSender writes the verification link to the log instead of sending mail.
type logVerificationSender struct {
	baseURL string
}

var _ usecase.VerificationSender = (*logVerificationSender)(nil)

// NewLogVerificationSender returns a sender that logs links of the form <baseURL>/api/auth/verify-email?token=...
func NewLogVerificationSender(baseURL string) *logVerificationSender {
	return &logVerificationSender{baseURL: baseURL}
}

func (s *logVerificationSender) SendVerification(ctx context.Context, email, token string) error {
	link := s.baseURL + "/api/auth/verify-email?token=" + url.QueryEscape(token)
	slog.DebugContext(ctx, "email verification link issued", "email", email, "link", link)
	return nil
}
