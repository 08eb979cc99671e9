package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/bookmarks/internal/tokens"
	"github.com/gin-gonic/gin"
)

const (
	// CurrentUserIDKey ключ контекста gin с идентификатором аутентифицированного пользователя.
	CurrentUserIDKey = "currentUserID"

	bearerPrefix = "Bearer "
)

// RequireAuth проверяет токен доступа из заголовка Authorization и кладет
// идентификатор пользователя в контекст. Без валидного токена запрос
// обрывается с кодом 401 до вызова хендлера.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		claims, err := tokens.ValidateUserJWT(raw, tokens.KindAccess, jwtSecret)
		if err != nil {
			_ = c.Error(fmt.Errorf("auth middleware: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CurrentUserIDKey, claims.UserID)
		c.Next()
	}
}

// BearerToken достает bearer токен из заголовка Authorization.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", false
	}
	return token, true
}
