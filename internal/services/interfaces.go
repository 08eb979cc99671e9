package services

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// UserRepository описывает репозиторий пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail находит пользователя по email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByUsername находит пользователя по имени.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByID находит пользователя по идентификатору.
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// BookmarkRepository описывает репозиторий закладок.
type BookmarkRepository interface {
	// Create сохраняет новую закладку.
	Create(ctx context.Context, bookmark *models.Bookmark) error
	// GetByID находит закладку по идентификатору в рамках владельца.
	GetByID(ctx context.Context, userID, id uint) (*models.Bookmark, error)
	// GetByURL находит закладку по ссылке (глобально, без владельца).
	GetByURL(ctx context.Context, rawURL string) (*models.Bookmark, error)
	// GetByShortIdentifier находит закладку по короткому идентификатору.
	GetByShortIdentifier(ctx context.Context, shortID string) (*models.Bookmark, error)
	// ListByUserID возвращает страницу закладок владельца и общее их количество.
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Bookmark, int64, error)
	// GetAllByUserID возвращает все закладки владельца.
	GetAllByUserID(ctx context.Context, userID uint) ([]models.Bookmark, error)
	// Update сохраняет измененные поля закладки.
	Update(ctx context.Context, bookmark *models.Bookmark) error
	// Delete удаляет закладку владельца.
	Delete(ctx context.Context, userID, id uint) error
	// IncrementVisits атомарно увеличивает счетчик переходов.
	IncrementVisits(ctx context.Context, id uint) error
}
