package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// IdentityService resolves federated-login callbacks into local sessions.
type IdentityService interface {
	HandleCallback(ctx context.Context, code string) (*domain.SessionAttributes, error)
}
