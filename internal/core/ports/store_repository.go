package ports

import "context"

// StoreLinkRepository tracks which account owns which store. Stores
// themselves live in the analytics service; only the ownership link is
// persisted locally.
type StoreLinkRepository interface {
	StoreIDsByAccount(ctx context.Context, accountID int64) ([]int64, error)
	IsOwner(ctx context.Context, storeID, accountID int64) (bool, error)
	Link(ctx context.Context, storeID, accountID int64) error
	Unlink(ctx context.Context, storeID int64) error
}
