package controllers

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/services"
)

// UserManager описывает операции над пользователями, нужные контроллерам.
type UserManager interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// BookmarkManager описывает операции над закладками, нужные контроллерам.
type BookmarkManager interface {
	Create(ctx context.Context, userID uint, rawURL, body string) (*models.Bookmark, error)
	List(ctx context.Context, userID uint, page, perPage int) (*services.BookmarkPage, error)
	Get(ctx context.Context, userID, id uint) (*models.Bookmark, error)
	Update(ctx context.Context, userID, id uint, rawURL, body string) (*models.Bookmark, error)
	Delete(ctx context.Context, userID, id uint) error
	Stats(ctx context.Context, userID uint) ([]models.Bookmark, error)
	Visit(ctx context.Context, shortID string) (*models.Bookmark, error)
}

// ConnectionChecker проверяет соединение с базой данных.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}
