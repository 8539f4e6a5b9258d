package proxy

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
)

// AnalysisProxy delegates analysis runs and result lookups to the analytics
// service. Analysis result ids are upstream-owned strings and pass through
// unchanged; store ids are re-encoded like everywhere else.
type AnalysisProxy struct {
	client *analytics.Client
	codec  *idcodec.Codec
	log    zerolog.Logger
}

func NewAnalysisProxy(client *analytics.Client, codec *idcodec.Codec, log zerolog.Logger) *AnalysisProxy {
	return &AnalysisProxy{client: client, codec: codec, log: log}
}

var analysisRunErrors = classification{
	badRequest: []signature{
		{"invalid source_id", domain.ErrInvalidRequestField},
	},
	processing: []signature{
		{"error during combined analysis", domain.ErrAnalysisProcessing},
	},
}

func (p *AnalysisProxy) RunCombined(ctx context.Context, storeID int64, posType string) (map[string]any, error) {
	body := map[string]any{
		"store_id": storeID,
		"pos_type": posType,
	}

	resp, err := p.client.Post(ctx, "/api/eda/analyze/combined", body)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream combined analysis failed")
		return nil, analysisRunErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	encodeIDField(p.codec, result, "store_id")
	return result, nil
}

var analysisResultErrors = classification{
	notFound: domain.ErrAnalysisNotFound,
	badRequest: []signature{
		{"invalid analysis result id", domain.ErrInvalidAnalysisID},
	},
	processing: []signature{
		{"error while fetching analysis result", domain.ErrAnalysisProcessing},
	},
}

func (p *AnalysisProxy) Result(ctx context.Context, analysisID string) (map[string]any, error) {
	resp, err := p.client.Get(ctx, "/api/eda/results/"+url.PathEscape(analysisID))
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream analysis result failed")
		return nil, analysisResultErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	encodeIDField(p.codec, result, "store_id")
	encodeIDInChild(p.codec, result, "analysis", "store_id")
	return result, nil
}
