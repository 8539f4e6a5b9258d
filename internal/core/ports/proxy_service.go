package ports

import "context"

// Proxy service contracts. Inputs carry internal ids (already decoded at
// the handler boundary); outputs are parsed upstream bodies with every
// identifier-bearing field re-encoded to opaque form.

type StoreRegisterInput struct {
	StoreName      string
	BusinessNumber string
	POSType        string
	Category       string
}

type StoreProxyService interface {
	RegisterWithBusiness(ctx context.Context, accountID int64, in StoreRegisterInput) (map[string]any, error)
	List(ctx context.Context, accountID int64) (map[string]any, error)
	Detail(ctx context.Context, storeID int64) (map[string]any, error)
	SetMain(ctx context.Context, storeID int64) (map[string]any, error)
	Delete(ctx context.Context, storeID int64) (map[string]any, error)
}

type AnalysisProxyService interface {
	RunCombined(ctx context.Context, storeID int64, posType string) (map[string]any, error)
	Result(ctx context.Context, analysisID string) (map[string]any, error)
}

type ChatProxyService interface {
	Send(ctx context.Context, accountID int64, message, sessionID string) (map[string]any, error)
}

type LocationProxyService interface {
	Recommend(ctx context.Context, industry, targetAge, priority string) (map[string]any, error)
}
