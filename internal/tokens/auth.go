package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Kind тип токена. Токен обновления нельзя использовать как токен доступа и наоборот.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// UserClaims представляет данные JWT токена пользователя.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"uid"`
	Kind   Kind `json:"kind"`
}

// GenerateUserJWT создает JWT токен заданного типа для пользователя.
//
// Параметры:
//   - userID: идентификатор пользователя
//   - kind: тип токена (access или refresh)
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateUserJWT(userID uint, kind Kind, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
		UserID: userID,
		Kind:   kind,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating %s jwt token: %w", kind, err)
	}
	return token, nil
}

// ValidateUserJWT проверяет JWT токен пользователя.
// Токен с типом отличным от wantKind отклоняется (ErrWrongTokenKind).
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - wantKind: ожидаемый тип токена
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *UserClaims: данные проверенного токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateUserJWT(tokenString string, wantKind Kind, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.Kind != wantKind {
		return nil, ErrWrongTokenKind
	}
	return claims, nil
}

// generateJWT создает JWT токен с указанными данными.
func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

// validateJWT проверяет JWT токен.
func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}

	return token, nil
}
