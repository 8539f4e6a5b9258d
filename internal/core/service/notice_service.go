package service

import (
	"context"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/ports"
)

const noticePageSize = 10

// NoticeService wraps the notice repository with paging math.
type NoticeService struct {
	notices ports.NoticeRepository
}

func NewNoticeService(notices ports.NoticeRepository) *NoticeService {
	return &NoticeService{notices: notices}
}

func (s *NoticeService) Get(ctx context.Context, id int64) (*domain.Notice, error) {
	return s.notices.FindByID(ctx, id)
}

func (s *NoticeService) Page(ctx context.Context, page int) ([]*domain.Notice, error) {
	if page < 1 {
		return nil, domain.ErrInvalidQueryParameter
	}
	return s.notices.FindPage(ctx, page, noticePageSize)
}

func (s *NoticeService) PageCount(ctx context.Context) (int64, error) {
	total, err := s.notices.Count(ctx)
	if err != nil {
		return 0, err
	}
	pages := total / noticePageSize
	if total%noticePageSize != 0 {
		pages++
	}
	return pages, nil
}

func (s *NoticeService) Create(ctx context.Context, authorID int64, title, content string) (*domain.Notice, error) {
	return s.notices.Create(ctx, &domain.Notice{Title: title, Content: content, AuthorID: authorID})
}

func (s *NoticeService) Update(ctx context.Context, id int64, title, content string) error {
	return s.notices.Update(ctx, id, title, content)
}

func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	return s.notices.Delete(ctx, id)
}
