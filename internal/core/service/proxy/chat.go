package proxy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
)

// ChatProxy forwards chatbot messages to the analytics service on behalf of
// the authenticated account.
type ChatProxy struct {
	client *analytics.Client
	log    zerolog.Logger
}

func NewChatProxy(client *analytics.Client, log zerolog.Logger) *ChatProxy {
	return &ChatProxy{client: client, log: log}
}

var chatErrors = classification{
	notFound: domain.ErrResourceNotFound,
	badRequest: []signature{
		{"user_id", domain.ErrInvalidRequestField},
		{"message", domain.ErrInvalidRequestField},
	},
	processing: []signature{
		{"error while processing chat", domain.ErrChatProcessing},
	},
}

func (p *ChatProxy) Send(ctx context.Context, accountID int64, message, sessionID string) (map[string]any, error) {
	body := map[string]any{
		"user_id": accountID,
		"message": message,
	}
	if sessionID != "" {
		body["session_id"] = sessionID
	}

	resp, err := p.client.Post(ctx, "/api/chat", body)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream chat failed")
		return nil, chatErrors.classify(resp.Status, resp.Body)
	}

	return parseBody(resp.Body)
}
