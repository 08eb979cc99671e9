package sql

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserRepo репозиторий для работы с таблицей `users`.
type UserRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewUserRepo(db *gorm.DB, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/user"),
	}
}

// Create сохраняет нового пользователя. Уникальность username/email
// обеспечивается индексами, нарушение вернется как ErrDuplicateKey.
func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		convErr := convertErrorType(err)
		u.logger.WithError(err).Errorf("failed to create user %s", user.Username)
		return convErr
	}
	return nil
}

// GetByEmail находит пользователя по email.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, convertErrorType(err)
	}
	return &user, nil
}

// GetByUsername находит пользователя по имени.
func (u *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, convertErrorType(err)
	}
	return &user, nil
}

// GetByID находит пользователя по идентификатору.
func (u *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, convertErrorType(err)
	}
	return &user, nil
}
