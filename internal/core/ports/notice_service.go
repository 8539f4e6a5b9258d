package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// NoticeService implements the admin-notice flows.
type NoticeService interface {
	Get(ctx context.Context, id int64) (*domain.Notice, error)
	Page(ctx context.Context, page int) ([]*domain.Notice, error)
	PageCount(ctx context.Context) (int64, error)
	Create(ctx context.Context, authorID int64, title, content string) (*domain.Notice, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}
