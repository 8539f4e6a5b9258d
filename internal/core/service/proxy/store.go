// Package proxy implements the gateway to the internal analytics service.
// Each operation decodes client-supplied opaque identifiers before
// forwarding, classifies every non-2xx upstream response into the closed
// error taxonomy, and re-encodes identifier-bearing fields in successful
// payloads before they return to the client.
package proxy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
	"github.com/storepulse/insight-api/internal/core/ports"
	"github.com/storepulse/insight-api/internal/infrastructure/analytics"
)

// StoreProxy delegates store operations to the analytics service and keeps
// the local ownership links in sync on registration and deletion.
type StoreProxy struct {
	client *analytics.Client
	codec  *idcodec.Codec
	stores ports.StoreLinkRepository
	log    zerolog.Logger
}

func NewStoreProxy(client *analytics.Client, codec *idcodec.Codec, stores ports.StoreLinkRepository, log zerolog.Logger) *StoreProxy {
	return &StoreProxy{client: client, codec: codec, stores: stores, log: log}
}

var storeRegisterErrors = classification{
	unprocessable: domain.ErrBusinessVerifyFailed,
	badRequest: []signature{
		{"store name must be at least 2 characters", domain.ErrInvalidStoreName},
		{"business number must be 10 digits", domain.ErrInvalidBusinessNumber},
	},
	processing: []signature{
		{"error while registering store", domain.ErrStoreRegistration},
	},
}

func (p *StoreProxy) RegisterWithBusiness(ctx context.Context, accountID int64, in ports.StoreRegisterInput) (map[string]any, error) {
	body := map[string]any{
		"user_id":         accountID,
		"store_name":      in.StoreName,
		"business_number": in.BusinessNumber,
		"pos_type":        in.POSType,
		"category":        in.Category,
	}

	resp, err := p.client.Post(ctx, "/api/store/register-with-business", body)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream store register failed")
		return nil, storeRegisterErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}

	// Record ownership before the raw id is obfuscated away.
	if storeID, ok := asInt64(result["store_id"]); ok {
		if err := p.stores.Link(ctx, storeID, accountID); err != nil {
			p.log.Error().Err(err).Int64("store_id", storeID).Msg("store ownership link failed")
			return nil, domain.ErrInternalServer
		}
	}

	encodeIDField(p.codec, result, "store_id")
	encodeIDInChild(p.codec, result, "store_info", "store_id")
	return result, nil
}

var storeListErrors = classification{
	processing: []signature{
		{"error while fetching store list", domain.ErrStoreListProcessing},
	},
}

func (p *StoreProxy) List(ctx context.Context, accountID int64) (map[string]any, error) {
	resp, err := p.client.Get(ctx, fmt.Sprintf("/api/store/list/%d", accountID))
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream store list failed")
		return nil, storeListErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	encodeIDInList(p.codec, result["stores"], "store_id")
	return result, nil
}

var storeDetailErrors = classification{
	notFound:           domain.ErrStoreNotFound,
	badRequestFallback: domain.ErrInvalidIDFormat,
	processing: []signature{
		{"error while fetching store detail", domain.ErrStoreDetailProcessing},
	},
}

func (p *StoreProxy) Detail(ctx context.Context, storeID int64) (map[string]any, error) {
	resp, err := p.client.Get(ctx, fmt.Sprintf("/api/store/detail/%d", storeID))
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream store detail failed")
		return nil, storeDetailErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	encodeIDInChild(p.codec, result, "store", "store_id")
	return result, nil
}

var storeMutateErrors = classification{
	notFound:           domain.ErrStoreNotFound,
	badRequestFallback: domain.ErrInvalidIDFormat,
	processing: []signature{
		{"error while updating store", domain.ErrStoreDetailProcessing},
		{"error while deleting store", domain.ErrStoreDetailProcessing},
	},
}

func (p *StoreProxy) SetMain(ctx context.Context, storeID int64) (map[string]any, error) {
	resp, err := p.client.Post(ctx, "/api/store/set-main", map[string]any{"store_id": storeID})
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream set main store failed")
		return nil, storeMutateErrors.classify(resp.Status, resp.Body)
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	encodeIDField(p.codec, result, "store_id")
	return result, nil
}

func (p *StoreProxy) Delete(ctx context.Context, storeID int64) (map[string]any, error) {
	resp, err := p.client.Delete(ctx, fmt.Sprintf("/api/store/%d", storeID))
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	if !resp.OK() {
		p.log.Error().Int("status", resp.Status).Bytes("body", resp.Body).Msg("upstream store delete failed")
		return nil, storeMutateErrors.classify(resp.Status, resp.Body)
	}

	if err := p.stores.Unlink(ctx, storeID); err != nil {
		p.log.Error().Err(err).Int64("store_id", storeID).Msg("store ownership unlink failed")
		return nil, domain.ErrInternalServer
	}

	result, err := parseBody(resp.Body)
	if err != nil {
		return nil, err
	}
	return result, nil
}
