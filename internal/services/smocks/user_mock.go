package smocks

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/stretchr/testify/mock"
)

type UserMock struct {
	mock.Mock
}

func (u *UserMock) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := u.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := u.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := u.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}
