package ports

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// NoticeRepository defines persistence for admin notices.
type NoticeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Notice, error)
	FindPage(ctx context.Context, page, size int) ([]*domain.Notice, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}
