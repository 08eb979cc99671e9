package services

import (
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/base64"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"github.com/pkg/errors"
)

// DefaultPage страница списка по умолчанию.
// DefaultPerPage размер страницы по умолчанию.
const (
	DefaultPage    = 1
	DefaultPerPage = 5
)

// PaginationMeta метаданные пагинации списка закладок.
// PrevPage/NextPage равны nil на границах списка.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Pages      int   `json:"pages"`
	TotalCount int64 `json:"total_count"`
	PrevPage   *int  `json:"prev_page"`
	NextPage   *int  `json:"next_page"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// BookmarkPage страница закладок вместе с метаданными.
type BookmarkPage struct {
	Items []models.Bookmark
	Meta  PaginationMeta
}

// BookmarkService Сервис работает с базой данных в контексте таблицы `bookmarks`.
// Владелец (userID) передается явно в каждый вызов, записи других пользователей
// для сервиса не существуют.
type BookmarkService struct {
	bookmarkRepo BookmarkRepository
}

func NewBookmarkService(bookmarkRepo BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarkRepo: bookmarkRepo}
}

// Create создает закладку с новым коротким идентификатором и нулевым счетчиком переходов.
// URL уникален глобально: занятый адрес возвращает ConflictError.
func (b *BookmarkService) Create(ctx context.Context, userID uint, rawURL, body string) (*models.Bookmark, error) {
	parsedURL, parseErr := validateURL(rawURL)
	if parseErr != nil {
		return nil, &ValidationError{Message: "Enter a valid url"}
	}
	rawURL = parsedURL.String()

	if _, err := b.bookmarkRepo.GetByURL(ctx, rawURL); err == nil {
		return nil, &ConflictError{Message: "URL already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	var delta uint = 1
	var deltaMax uint = 10

	for {
		if delta >= deltaMax {
			return nil, errors.Wrap(ErrUnknown, "generateShortID loop limit for url")
		}
		bookmark := models.Bookmark{
			URL:             rawURL,
			Body:            body,
			UserID:          userID,
			ShortIdentifier: generateShortID(rawURL, delta, models.ShortIdentifierLength),
		}
		if createErr := b.bookmarkRepo.Create(ctx, &bookmark); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				// Либо параллельная вставка того же URL, либо коллизия короткого
				// идентификатора. Отличаем повторной проверкой URL.
				if _, urlErr := b.bookmarkRepo.GetByURL(ctx, rawURL); urlErr == nil {
					return nil, &ConflictError{Message: "URL already exists"}
				}
				delta++
				continue
			}
			return nil, ErrUnknown
		}
		return &bookmark, nil
	}
}

// List возвращает страницу закладок владельца. Значения page/perPage меньше 1
// заменяются значениями по умолчанию.
func (b *BookmarkService) List(ctx context.Context, userID uint, page, perPage int) (*BookmarkPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	items, total, err := b.bookmarkRepo.ListByUserID(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, ErrUnknown
	}

	return &BookmarkPage{
		Items: items,
		Meta:  buildPaginationMeta(page, perPage, total),
	}, nil
}

// Get возвращает закладку владельца по идентификатору.
func (b *BookmarkService) Get(ctx context.Context, userID, id uint) (*models.Bookmark, error) {
	bookmark, err := b.bookmarkRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "bookmark %d not found", id)
		}
		return nil, ErrUnknown
	}
	return bookmark, nil
}

// Update меняет url и body закладки владельца. Новый URL проходит ту же проверку
// уникальности что и при создании, занятый другим адресом URL возвращает ConflictError.
func (b *BookmarkService) Update(ctx context.Context, userID, id uint, rawURL, body string) (*models.Bookmark, error) {
	bookmark, getErr := b.Get(ctx, userID, id)
	if getErr != nil {
		return nil, getErr
	}

	parsedURL, parseErr := validateURL(rawURL)
	if parseErr != nil {
		return nil, &ValidationError{Message: "Enter a valid url"}
	}
	rawURL = parsedURL.String()

	if existing, err := b.bookmarkRepo.GetByURL(ctx, rawURL); err == nil {
		if existing.ID != bookmark.ID {
			return nil, &ConflictError{Message: "URL already exists"}
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	bookmark.URL = rawURL
	bookmark.Body = body

	if updateErr := b.bookmarkRepo.Update(ctx, bookmark); updateErr != nil {
		if errors.Is(updateErr, repositories.ErrDuplicateKey) {
			return nil, &ConflictError{Message: "URL already exists"}
		}
		return nil, ErrUnknown
	}
	return bookmark, nil
}

// Delete безвозвратно удаляет закладку владельца.
func (b *BookmarkService) Delete(ctx context.Context, userID, id uint) error {
	if err := b.bookmarkRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "bookmark %d not found", id)
		}
		return ErrUnknown
	}
	return nil
}

// Stats возвращает все закладки владельца для сводки, без пагинации.
func (b *BookmarkService) Stats(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	items, err := b.bookmarkRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, ErrUnknown
	}
	return items, nil
}

// Visit находит закладку по короткому идентификатору и увеличивает счетчик переходов.
func (b *BookmarkService) Visit(ctx context.Context, shortID string) (*models.Bookmark, error) {
	bookmark, err := b.bookmarkRepo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "short id %s not found", shortID)
		}
		return nil, ErrUnknown
	}
	if incErr := b.bookmarkRepo.IncrementVisits(ctx, bookmark.ID); incErr != nil {
		return nil, ErrUnknown
	}
	return bookmark, nil
}

// buildPaginationMeta считает метаданные страницы в терминах полной выборки.
func buildPaginationMeta(page, perPage int, total int64) PaginationMeta {
	pages := int((total + int64(perPage) - 1) / int64(perPage))

	meta := PaginationMeta{
		Page:       page,
		Pages:      pages,
		TotalCount: total,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}

// generateShortID генерирует идентификатор для ссылки нужной длины на основе delta.
func generateShortID(rawURL string, delta uint, length int) string {
	// Добавляем счетчик к срезу (для избежания коллизий)
	b := []byte(rawURL)
	b = append(b, byte(delta))

	// Создаем хеш и конвертим в base62
	hash := md5.Sum(b) //nolint:gosec
	base62 := base64.URLEncoding.EncodeToString(hash[:])
	return base62[:length]
}
