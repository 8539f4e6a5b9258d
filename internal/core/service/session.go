package service

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
)

// buildSessionAttributes assembles the outward-facing session payload shared
// by local login and federated resolution. The account id and every owned
// store id pass through the codec here; raw ids never leave this function.
func buildSessionAttributes(
	ctx context.Context,
	account *domain.Account,
	firstLogin bool,
	tokens *TokenService,
	codec *idcodec.Codec,
	stores ports.StoreLinkRepository,
) (*domain.SessionAttributes, error) {
	accessToken, err := tokens.Issue(account.ID, SessionTokenTTL)
	if err != nil {
		return nil, err
	}

	storeIDs, err := stores.StoreIDsByAccount(ctx, account.ID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	encoded := make([]string, 0, len(storeIDs))
	for _, id := range storeIDs {
		encoded = append(encoded, codec.Encode(id))
	}

	return &domain.SessionAttributes{
		AccessToken:   accessToken,
		Name:          account.Name,
		ProfileImgURL: account.ProfileImgURL,
		IsFirstLogin:  firstLogin,
		UserID:        codec.Encode(account.ID),
		Role:          account.Role,
		StoreIDs:      encoded,
	}, nil
}
