package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// IdentityService links federated identities to local accounts. A provider
// subject id maps to at most one account; the first sighting creates the
// account, every later sighting resolves to it.
type IdentityService struct {
	accounts ports.AccountRepository
	stores   ports.StoreLinkRepository
	provider ports.OAuthProvider
	tokens   *TokenService
	codec    *idcodec.Codec
	log      zerolog.Logger
}

func NewIdentityService(
	accounts ports.AccountRepository,
	stores ports.StoreLinkRepository,
	provider ports.OAuthProvider,
	tokens *TokenService,
	codec *idcodec.Codec,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		accounts: accounts,
		stores:   stores,
		provider: provider,
		tokens:   tokens,
		codec:    codec,
		log:      log,
	}
}

// HandleCallback exchanges the authorization code and resolves the reported
// profile to a local session.
func (s *IdentityService) HandleCallback(ctx context.Context, code string) (*domain.SessionAttributes, error) {
	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Msg("oauth code exchange failed")
		return nil, domain.ErrUnauthorized
	}
	return s.resolve(ctx, profile)
}

func (s *IdentityService) resolve(ctx context.Context, profile *domain.SocialProfile) (*domain.SessionAttributes, error) {
	account, err := s.accounts.FindBySocialID(ctx, profile.Provider, profile.SocialID)
	if err == nil {
		return buildSessionAttributes(ctx, account, false, s.tokens, s.codec, s.stores)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	created, err := s.accounts.CreateSocial(ctx, &domain.Account{
		Name:          profile.Name,
		ProfileImgURL: profile.ProfileImgURL,
		Role:          domain.RoleUser,
		Provider:      profile.Provider,
		SocialID:      profile.SocialID,
	})
	if errors.Is(err, domain.ErrUserDuplicate) {
		// A concurrent callback for the same provider id won the insert.
		// Browsers retry federated callbacks, so this is a normal path:
		// fall back to the found branch instead of erroring.
		existing, findErr := s.accounts.FindBySocialID(ctx, profile.Provider, profile.SocialID)
		if findErr != nil {
			return nil, findErr
		}
		return buildSessionAttributes(ctx, existing, false, s.tokens, s.codec, s.stores)
	}
	if err != nil {
		return nil, err
	}

	return buildSessionAttributes(ctx, created, true, s.tokens, s.codec, s.stores)
}
