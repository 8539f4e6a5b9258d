package proxy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
)

// LocationProxy delegates commercial-district recommendations. The route is
// public; no identifiers appear in either direction.
type LocationProxy struct {
	client *analytics.Client
	log    zerolog.Logger
}

func NewLocationProxy(client *analytics.Client, log zerolog.Logger) *LocationProxy {
	return &LocationProxy{client: client, log: log}
}

var locationErrors = classification{
	processing: []signature{
		{"error while recommending location", domain.ErrLocationProcessing},
	},
}

func (p *LocationProxy) Recommend(ctx context.Context, industry, targetAge, priority string) (map[string]any, error) {
	body := map[string]any{
		"industry":   industry,
		"target_age": targetAge,
		"priority":   priority,
	}

	resp, err := p.client.Post(ctx, "/api/location/recommend", body)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream location recommend failed")
		return nil, locationErrors.classify(resp.Status, resp.Body)
	}

	return parseBody(resp.Body)
}
