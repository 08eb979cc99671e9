package services

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
	"github.com/fsdevblog/bookmarks/internal/services/mocks"
)

func TestUserService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// До репозитория дело дойти не должно, никаких EXPECT.
	service := NewUserService(mocks.NewMockUserRepository(ctrl))
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantMsg  string
	}{
		{name: "short password", username: "bob", email: "bob@test.com", password: "12345", wantMsg: "Password is too short"},
		{name: "short password wins over bad email", username: "bob", email: "broken", password: "123", wantMsg: "Password is too short"},
		{name: "short username", username: "bo", email: "bob@test.com", password: "123456", wantMsg: "Username is too short"},
		{name: "username with space", username: "bob smith", email: "bob@test.com", password: "123456", wantMsg: "Username should be alphanumeric and no spaces"},
		{name: "username with symbols", username: "bob!", email: "bob@test.com", password: "123456", wantMsg: "Username should be alphanumeric and no spaces"},
		{name: "bad email", username: "bob", email: "not-an-email", password: "123456", wantMsg: "Invalid Email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.username, tt.email, tt.password)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
		})
	}
}

func TestUserService_Register_Conflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo)
	ctx := context.Background()

	t.Run("email taken", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "bob@test.com").
			Return(&models.User{Email: "bob@test.com"}, nil)

		_, err := service.Register(ctx, "bob", "bob@test.com", "123456")

		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, "Email already exists", cErr.Message)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("username taken", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(gomock.Any(), "bob@test.com").
			Return(nil, repositories.ErrNotFound)
		mockRepo.EXPECT().
			GetByUsername(gomock.Any(), "bob").
			Return(&models.User{Username: "bob"}, nil)

		_, err := service.Register(ctx, "bob", "bob@test.com", "123456")

		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, "Username is already taken", cErr.Message)
	})
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo)
	ctx := context.Background()

	password := gofakeit.Password(true, true, true, false, false, 10)
	email := gofakeit.Email()

	mockRepo.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, repositories.ErrNotFound)
	mockRepo.EXPECT().GetByUsername(gomock.Any(), "alice42").Return(nil, repositories.ErrNotFound)

	var created *models.User
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})

	user, err := service.Register(ctx, "alice42", email, password)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "alice42", user.Username)
	assert.Equal(t, email, user.Email)
	// В хранилище уходит только хеш, не исходный пароль.
	assert.NotEqual(t, password, created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(password)))
}

func TestUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewUserService(mockRepo)
	ctx := context.Background()

	hash, hashErr := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, hashErr)
	user := &models.User{ID: 1, Username: "bob", Email: "bob@test.com", Password: string(hash)}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@test.com").Return(user, nil)

		got, err := service.Authenticate(ctx, "bob@test.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@test.com").Return(user, nil)
		wrongPassErr := func() error {
			_, err := service.Authenticate(ctx, "bob@test.com", "bad-pass")
			return err
		}()

		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@test.com").Return(nil, repositories.ErrNotFound)
		unknownEmailErr := func() error {
			_, err := service.Authenticate(ctx, "ghost@test.com", "123456")
			return err
		}()

		assert.ErrorIs(t, wrongPassErr, ErrWrongCredentials)
		assert.ErrorIs(t, unknownEmailErr, ErrWrongCredentials)
		assert.Equal(t, wrongPassErr, unknownEmailErr)
	})
}
