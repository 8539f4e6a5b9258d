package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// AccountRepository defines persistence for local accounts and their
// federated identity links. Create and CreateSocial must return
// domain.ErrUserDuplicate on a unique-key violation so callers can handle
// creation races.
type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByName(ctx context.Context, name string) (*domain.Account, error)
	FindBySocialID(ctx context.Context, provider, socialID string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	CreateSocial(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
