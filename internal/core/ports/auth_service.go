package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// AuthService implements the local-credential account flows.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) error
	Login(ctx context.Context, email, password string) (*domain.SessionAttributes, error)
	AccountInfo(ctx context.Context, accountID int64) (*domain.Account, error)
	Delete(ctx context.Context, accountID int64) error
	UpdateName(ctx context.Context, accountID int64, name string) error
	UpdatePassword(ctx context.Context, accountID int64, password string) error
	CheckNameDuplicate(ctx context.Context, name string) error
	CheckEmailDuplicate(ctx context.Context, email string) error
}
