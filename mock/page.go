package mock

import (
	"context"

	"github.com/fwojciec/pagekit"
)

var _ pagekit.PageService = (*PageService)(nil)

// PageService is a mock implementation of pagekit.PageService.
type PageService struct {
	CreatePageFn   func(ctx context.Context, page *pagekit.Page) error
	FindPageByIDFn func(ctx context.Context, id string) (*pagekit.Page, error)
	FindPagesFn    func(ctx context.Context, filter pagekit.PageFilter) ([]*pagekit.Page, error)
	UpdatePageFn   func(ctx context.Context, id string, upd pagekit.PageUpdate) (*pagekit.Page, error)
	DeletePageFn   func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *pagekit.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagekit.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter pagekit.PageFilter) ([]*pagekit.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) UpdatePage(ctx context.Context, id string, upd pagekit.PageUpdate) (*pagekit.Page, error) {
	return s.UpdatePageFn(ctx, id, upd)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
