package sql

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BookmarkRepo репозиторий для работы с таблицей `bookmarks`.
// Все выборки кроме GetByURL и GetByShortIdentifier ограничены владельцем записи.
type BookmarkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewBookmarkRepo(db *gorm.DB, logger *logrus.Logger) *BookmarkRepo {
	return &BookmarkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/bookmark"),
	}
}

// Create сохраняет новую закладку. Гонка параллельных вставок с одинаковым URL
// разрешается уникальным индексом хранилища, проигравший получает ErrDuplicateKey.
func (b *BookmarkRepo) Create(ctx context.Context, bookmark *models.Bookmark) error {
	if err := b.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return convertErrorType(err)
	}
	return nil
}

// GetByID находит закладку по идентификатору в рамках владельца.
// Чужая запись неотличима от несуществующей.
func (b *BookmarkRepo) GetByID(ctx context.Context, userID, id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := b.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&bookmark).Error
	if err != nil {
		return nil, convertErrorType(err)
	}
	return &bookmark, nil
}

// GetByURL находит закладку по ссылке. Проверка глобальная, без владельца.
func (b *BookmarkRepo) GetByURL(ctx context.Context, rawURL string) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := b.db.WithContext(ctx).Where("url = ?", rawURL).First(&bookmark).Error; err != nil {
		return nil, convertErrorType(err)
	}
	return &bookmark, nil
}

// GetByShortIdentifier находит закладку по короткому идентификатору.
func (b *BookmarkRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := b.db.WithContext(ctx).
		Where("short_identifier = ?", shortID).
		First(&bookmark).Error
	if err != nil {
		return nil, convertErrorType(err)
	}
	return &bookmark, nil
}

// ListByUserID возвращает страницу закладок владельца в порядке вставки
// и общее количество его записей.
func (b *BookmarkRepo) ListByUserID(
	ctx context.Context,
	userID uint,
	limit, offset int,
) ([]models.Bookmark, int64, error) {
	var total int64
	countErr := b.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if countErr != nil {
		b.logger.WithError(countErr).Errorf("failed to count bookmarks of user %d", userID)
		return nil, 0, convertErrorType(countErr)
	}

	var bookmarks []models.Bookmark
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&bookmarks).Error
	if err != nil {
		b.logger.WithError(err).Errorf("failed to list bookmarks of user %d", userID)
		return nil, 0, convertErrorType(err)
	}
	return bookmarks, total, nil
}

// GetAllByUserID возвращает все закладки владельца без пагинации.
func (b *BookmarkRepo) GetAllByUserID(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&bookmarks).Error
	if err != nil {
		b.logger.WithError(err).Errorf("failed to get all bookmarks of user %d", userID)
		return nil, convertErrorType(err)
	}
	return bookmarks, nil
}

// Update сохраняет измененные поля закладки, updated_at обновляет gorm.
func (b *BookmarkRepo) Update(ctx context.Context, bookmark *models.Bookmark) error {
	if err := b.db.WithContext(ctx).Save(bookmark).Error; err != nil {
		convErr := convertErrorType(err)
		b.logger.WithError(err).Errorf("failed to update bookmark %d", bookmark.ID)
		return convErr
	}
	return nil
}

// Delete удаляет закладку владельца. Если запись не найдена (или чужая),
// возвращает ErrNotFound.
func (b *BookmarkRepo) Delete(ctx context.Context, userID, id uint) error {
	res := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Bookmark{}, id)
	if res.Error != nil {
		b.logger.WithError(res.Error).Errorf("failed to delete bookmark %d", id)
		return convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return convertErrorType(gorm.ErrRecordNotFound)
	}
	return nil
}

// IncrementVisits атомарно увеличивает счетчик переходов.
func (b *BookmarkRepo) IncrementVisits(ctx context.Context, id uint) error {
	err := b.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("id = ?", id).
		UpdateColumn("visits", gorm.Expr("visits + 1")).Error
	if err != nil {
		b.logger.WithError(err).Errorf("failed to increment visits of bookmark %d", id)
		return convertErrorType(err)
	}
	return nil
}
