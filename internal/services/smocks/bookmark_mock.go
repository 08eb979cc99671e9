package smocks

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/stretchr/testify/mock"
)

type BookmarkMock struct {
	mock.Mock
}

func (b *BookmarkMock) Create(ctx context.Context, userID uint, rawURL, body string) (*models.Bookmark, error) {
	args := b.Called(ctx, userID, rawURL, body)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) List(ctx context.Context, userID uint, page, perPage int) (*services.BookmarkPage, error) {
	args := b.Called(ctx, userID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*services.BookmarkPage), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Get(ctx context.Context, userID, id uint) (*models.Bookmark, error) {
	args := b.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Update(ctx context.Context, userID, id uint, rawURL, body string) (*models.Bookmark, error) {
	args := b.Called(ctx, userID, id, rawURL, body)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Delete(ctx context.Context, userID, id uint) error {
	args := b.Called(ctx, userID, id)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Stats(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	args := b.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}

func (b *BookmarkMock) Visit(ctx context.Context, shortID string) (*models.Bookmark, error) {
	args := b.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Bookmark), args.Error(1) //nolint:wrapcheck,errcheck
}
