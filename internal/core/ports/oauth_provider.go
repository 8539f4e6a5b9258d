package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// OAuthProvider exchanges a federated-login authorization code for the
// provider's view of the caller.
type OAuthProvider interface {
	Exchange(ctx context.Context, code string) (*domain.SocialProfile, error)
}
