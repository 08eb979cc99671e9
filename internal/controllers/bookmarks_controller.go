package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/gin-gonic/gin"
)

// BookmarkController обрабатывает CRUD, сводку и переходы по закладкам.
// Все хендлеры кроме Redirect работают в рамках аутентифицированного пользователя.
type BookmarkController struct {
	bookmarkService BookmarkManager
	baseURL         *url.URL
}

func NewBookmarkController(bookmarkService BookmarkManager, baseURL *url.URL) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
		baseURL:         baseURL,
	}
}

type bookmarkRequest struct {
	URL  string `json:"url"`
	Body string `json:"body"`
}

type bookmarkResponse struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Body      string    `json:"body"`
	UserID    uint      `json:"user_id"`
	Visits    uint      `json:"visits"`
	ShortURL  string    `json:"short_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type bookmarkStatResponse struct {
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Visits   uint   `json:"visits"`
	ShortURL string `json:"short_url"`
}

// Create обрабатывает POST /api/v1/bookmarks/.
func (b *BookmarkController) Create(ctx *gin.Context) {
	var req bookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	bookmark, err := b.bookmarkService.Create(ctx, authUserID(ctx), req.URL, req.Body)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	renderJSON(ctx, http.StatusOK, gin.H{
		"message":  "Bookmark created successfully",
		"bookmark": b.serialize(ctx.Request, bookmark),
	})
}

// List обрабатывает GET /api/v1/bookmarks/.
// Параметры page и per_page опциональны (по умолчанию 1 и 5).
func (b *BookmarkController) List(ctx *gin.Context) {
	page := queryInt(ctx, "page", services.DefaultPage)
	perPage := queryInt(ctx, "per_page", services.DefaultPerPage)

	result, err := b.bookmarkService.List(ctx, authUserID(ctx), page, perPage)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	data := make([]bookmarkResponse, len(result.Items))
	for i := range result.Items {
		data[i] = b.serialize(ctx.Request, &result.Items[i])
	}

	renderJSON(ctx, http.StatusOK, gin.H{
		"data": data,
		"meta": result.Meta,
	})
}

// Get обрабатывает GET /api/v1/bookmarks/:id.
// Чужая закладка неотличима от несуществующей (HTTP 404 в обоих случаях).
func (b *BookmarkController) Get(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusNotFound, ErrItemNotFound.Error())
		return
	}

	bookmark, err := b.bookmarkService.Get(ctx, authUserID(ctx), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	renderJSON(ctx, http.StatusOK, b.serialize(ctx.Request, bookmark))
}

// Update обрабатывает PUT и PATCH /api/v1/bookmarks/:id.
func (b *BookmarkController) Update(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusNotFound, ErrItemNotFound.Error())
		return
	}

	var req bookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	bookmark, err := b.bookmarkService.Update(ctx, authUserID(ctx), id, req.URL, req.Body)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	renderJSON(ctx, http.StatusOK, b.serialize(ctx.Request, bookmark))
}

// Delete обрабатывает DELETE /api/v1/bookmarks/:id.
func (b *BookmarkController) Delete(ctx *gin.Context) {
	id, ok := paramUint(ctx, "id")
	if !ok {
		renderError(ctx, http.StatusNotFound, ErrItemNotFound.Error())
		return
	}

	if err := b.bookmarkService.Delete(ctx, authUserID(ctx), id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Stats обрабатывает GET /api/v1/bookmarks/stats.
// Возвращает сводку по всем закладкам пользователя без пагинации.
func (b *BookmarkController) Stats(ctx *gin.Context) {
	items, err := b.bookmarkService.Stats(ctx, authUserID(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	data := make([]bookmarkStatResponse, len(items))
	for i, item := range items {
		data[i] = bookmarkStatResponse{
			ID:       item.ID,
			URL:      item.URL,
			Visits:   item.Visits,
			ShortURL: b.getShortURL(ctx.Request, item.ShortIdentifier),
		}
	}

	renderJSON(ctx, http.StatusOK, gin.H{"data": data})
}

// Redirect обрабатывает GET /:shortID без аутентификации.
// Увеличивает счетчик переходов и перенаправляет на сохраненный URL.
func (b *BookmarkController) Redirect(ctx *gin.Context) {
	shortID := ctx.Param("shortID")

	if len(shortID) != models.ShortIdentifierLength {
		renderError(ctx, http.StatusNotFound, ErrItemNotFound.Error())
		return
	}

	bookmark, err := b.bookmarkService.Visit(ctx, shortID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, bookmark.URL)
}

func (b *BookmarkController) serialize(r *http.Request, bookmark *models.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:        bookmark.ID,
		URL:       bookmark.URL,
		Body:      bookmark.Body,
		UserID:    bookmark.UserID,
		Visits:    bookmark.Visits,
		ShortURL:  b.getShortURL(r, bookmark.ShortIdentifier),
		CreatedAt: bookmark.CreatedAt,
		UpdatedAt: bookmark.UpdatedAt,
	}
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (b *BookmarkController) getShortURL(r *http.Request, shortID string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if b.baseURL == nil {
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortID)
	}
	return fmt.Sprintf("%s/%s", b.baseURL, shortID)
}
