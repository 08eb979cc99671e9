package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/bookmarks/internal/controllers/middlewares"
	"github.com/fsdevblog/bookmarks/internal/tokens"
	"github.com/gin-gonic/gin"
)

// AuthController обрабатывает регистрацию и сессии пользователей.
type AuthController struct {
	userService UserManager
	jwtSecret   []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthController(
	userService UserManager,
	jwtSecret []byte,
	accessTTL, refreshTTL time.Duration,
) *AuthController {
	return &AuthController{
		userService: userService,
		jwtSecret:   jwtSecret,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает POST /api/v1/auth/register.
//
// В случае успеха возвращает HTTP 201 с username/email созданного пользователя.
// Ошибки валидации дают HTTP 400, конфликты уникальности HTTP 409.
func (a *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := a.userService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	renderJSON(ctx, http.StatusCreated, gin.H{
		"message": "User is successfully created",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login обрабатывает POST /api/v1/auth/login.
// Выдает пару токенов access/refresh. Несуществующий email и неверный пароль
// неразличимы в ответе.
func (a *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, authErr := a.userService.Authenticate(ctx, req.Email, req.Password)
	if authErr != nil {
		respondServiceError(ctx, authErr)
		return
	}

	access, accessErr := tokens.GenerateUserJWT(user.ID, tokens.KindAccess, a.accessTTL, a.jwtSecret)
	if accessErr != nil {
		_ = ctx.Error(fmt.Errorf("login: %w", accessErr))
		renderError(ctx, http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	refresh, refreshErr := tokens.GenerateUserJWT(user.ID, tokens.KindRefresh, a.refreshTTL, a.jwtSecret)
	if refreshErr != nil {
		_ = ctx.Error(fmt.Errorf("login: %w", refreshErr))
		renderError(ctx, http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	renderJSON(ctx, http.StatusAccepted, gin.H{
		"message": "Login is successful",
		"user": gin.H{
			"access":   access,
			"refresh":  refresh,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Me обрабатывает GET /api/v1/auth/me. Требует токен доступа.
func (a *AuthController) Me(ctx *gin.Context) {
	user, err := a.userService.GetByID(ctx, authUserID(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	renderJSON(ctx, http.StatusOK, gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

// Refresh обрабатывает POST /api/v1/auth/token/refresh.
// Принимает только refresh токен и выдает новый access токен для той же личности.
func (a *AuthController) Refresh(ctx *gin.Context) {
	raw, ok := middlewares.BearerToken(ctx)
	if !ok {
		renderError(ctx, http.StatusUnauthorized, "Missing Authorization header")
		return
	}

	claims, validateErr := tokens.ValidateUserJWT(raw, tokens.KindRefresh, a.jwtSecret)
	if validateErr != nil {
		_ = ctx.Error(fmt.Errorf("refresh: %w", validateErr))
		renderError(ctx, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	access, accessErr := tokens.GenerateUserJWT(claims.UserID, tokens.KindAccess, a.accessTTL, a.jwtSecret)
	if accessErr != nil {
		_ = ctx.Error(fmt.Errorf("refresh: %w", accessErr))
		renderError(ctx, http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	renderJSON(ctx, http.StatusOK, gin.H{"access": access})
}
