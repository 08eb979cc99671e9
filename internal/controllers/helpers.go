package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/bookmarks/internal/controllers/middlewares"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// renderJSON сериализует ответ через goccy/go-json и пишет его в ответ.
func renderJSON(ctx *gin.Context, status int, obj any) {
	data, err := json.Marshal(obj)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Data(status, "application/json; charset=utf-8", data)
}

// renderError отдает ошибку в едином формате {"error": message}.
func renderError(ctx *gin.Context, status int, message string) {
	renderJSON(ctx, status, gin.H{"error": message})
}

// respondServiceError переводит ошибку сервисного слоя в HTTP ответ.
// Ошибки валидации и конфликты несут клиентское сообщение, остальное
// схлопывается в обезличенные ответы.
func respondServiceError(ctx *gin.Context, err error) {
	var vErr *services.ValidationError
	var cErr *services.ConflictError

	switch {
	case errors.As(err, &vErr):
		renderError(ctx, http.StatusBadRequest, vErr.Message)
	case errors.As(err, &cErr):
		renderError(ctx, http.StatusConflict, cErr.Message)
	case errors.Is(err, services.ErrRecordNotFound):
		renderError(ctx, http.StatusNotFound, ErrItemNotFound.Error())
	case errors.Is(err, services.ErrWrongCredentials):
		renderError(ctx, http.StatusUnauthorized, "Wrong Credentials")
	default:
		_ = ctx.Error(err)
		renderError(ctx, http.StatusInternalServerError, ErrInternal.Error())
	}
}

// authUserID возвращает идентификатор пользователя, положенный в контекст
// миддлварой RequireAuth. Вызывается только из защищенных хендлеров.
func authUserID(ctx *gin.Context) uint {
	return ctx.GetUint(middlewares.CurrentUserIDKey)
}

// queryInt возвращает числовой query параметр либо значение по умолчанию.
func queryInt(ctx *gin.Context, name string, defaultValue int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// paramUint возвращает path параметр как uint.
func paramUint(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
