package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// AuthService implements the local-credential account flows: signup, login,
// profile updates and duplication checks.
type AuthService struct {
	accounts ports.AccountRepository
	stores   ports.StoreLinkRepository
	tokens   *TokenService
	codec    *idcodec.Codec
	log      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	stores ports.StoreLinkRepository,
	tokens *TokenService,
	codec *idcodec.Codec,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{accounts: accounts, stores: stores, tokens: tokens, codec: codec, log: log}
}

func (s *AuthService) SignUp(ctx context.Context, email, name, password string) error {
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return domain.ErrUserDuplicate
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrInternalServer
	}

	_, err = s.accounts.Create(ctx, &domain.Account{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if errors.Is(err, domain.ErrUserDuplicate) {
		return domain.ErrUserDuplicate
	}
	return err
}

// Login verifies credentials and returns the session attribute set. A
// missing account and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.SessionAttributes, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrLoginFailed
	}
	if err != nil {
		return nil, err
	}

	if !account.HasPassword() {
		// Federated-only account: no local password to check against.
		return nil, domain.ErrLoginFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrLoginFailed
	}

	return buildSessionAttributes(ctx, account, false, s.tokens, s.codec, s.stores)
}

func (s *AuthService) AccountInfo(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

func (s *AuthService) Delete(ctx context.Context, accountID int64) error {
	return s.accounts.Delete(ctx, accountID)
}

func (s *AuthService) UpdateName(ctx context.Context, accountID int64, name string) error {
	// Re-check here even though the client usually pre-validated: the check
	// endpoint and the update are not atomic.
	if err := s.CheckNameDuplicate(ctx, name); err != nil {
		return err
	}
	return s.accounts.UpdateName(ctx, accountID, name)
}

func (s *AuthService) UpdatePassword(ctx context.Context, accountID int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrInternalServer
	}
	return s.accounts.UpdatePassword(ctx, accountID, string(hash))
}

func (s *AuthService) CheckNameDuplicate(ctx context.Context, name string) error {
	_, err := s.accounts.FindByName(ctx, name)
	switch {
	case err == nil:
		return domain.ErrNameDuplicate
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (s *AuthService) CheckEmailDuplicate(ctx context.Context, email string) error {
	_, err := s.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailDuplicate
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return err
	}
}
