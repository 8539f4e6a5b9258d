package ports

import "context"

// MailService implements the verification-code and password-reset mail flows.
type MailService interface {
	SendVerification(ctx context.Context, email string) error
	CheckVerification(ctx context.Context, email, code string) error
	SendPasswordReset(ctx context.Context, email string) error
}
