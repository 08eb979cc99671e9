package services

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength минимальная длина пароля.
// MinUsernameLength минимальная длина имени пользователя.
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
)

// UserService Сервис работает с базой данных в контексте таблицы `users`.
type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register регистрирует нового пользователя.
// Порядок проверок фиксированный: сначала формат полей, затем уникальность.
// Пароль хранится только в виде bcrypt-хеша.
func (u *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, &ValidationError{Message: "Password is too short"}
	}
	if len(username) < MinUsernameLength {
		return nil, &ValidationError{Message: "Username is too short"}
	}
	if !validUsername(username) {
		return nil, &ValidationError{Message: "Username should be alphanumeric and no spaces"}
	}
	if !validEmail(email) {
		return nil, &ValidationError{Message: "Invalid Email format"}
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, &ConflictError{Message: "Email already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, &ConflictError{Message: "Username is already taken"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashErr != nil {
		return nil, ErrUnknown
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if createErr := u.userRepo.Create(ctx, &user); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			// Гонка параллельных регистраций, уникальный индекс решил не в нашу пользу.
			return nil, &ConflictError{Message: "Email or username already exists"}
		}
		return nil, ErrUnknown
	}
	return &user, nil
}

// Authenticate проверяет пару email/пароль.
// Отсутствие пользователя и неверный пароль намеренно неразличимы (ErrWrongCredentials),
// чтобы не раскрывать, зарегистрирован ли email.
func (u *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, ErrUnknown
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

// GetByID находит пользователя по идентификатору.
func (u *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "user %d not found", id)
		}
		return nil, ErrUnknown
	}
	return user, nil
}
