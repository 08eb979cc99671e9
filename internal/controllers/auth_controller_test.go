package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/services"
	"github.com/fsdevblog/bookmarks/internal/services/smocks"
	"github.com/fsdevblog/bookmarks/internal/tokens"
)

const testJWTSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// pingStub заглушка проверки соединения для роутера в тестах.
type pingStub struct{}

func (pingStub) CheckConnection(_ context.Context) error { return nil }

type AuthControllerSuite struct {
	suite.Suite
	userServMock     *smocks.UserMock
	bookmarkServMock *smocks.BookmarkMock
	router           *gin.Engine
}

func (s *AuthControllerSuite) SetupTest() {
	s.userServMock = new(smocks.UserMock)
	s.bookmarkServMock = new(smocks.BookmarkMock)
	s.router = SetupRouter(RouterParams{
		UserService:     s.userServMock,
		BookmarkService: s.bookmarkServMock,
		PingService:     pingStub{},
		AppConf: config.Config{
			ServerAddress:   ":80",
			JWTSecret:       testJWTSecret,
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	})
}

type requestFields struct {
	Method string
	URL    string
	Body   string
	Token  string
}

func (s *AuthControllerSuite) makeRequest(f requestFields) *http.Response {
	var body io.Reader
	if f.Body != "" {
		body = strings.NewReader(f.Body)
	}
	req := httptest.NewRequest(f.Method, f.URL, body)
	req.Header.Set("Content-Type", "application/json")
	if f.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.Token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Result()
}

func (s *AuthControllerSuite) TestRegister() {
	s.userServMock.On("Register", mock.Anything, "bob", "bob@test.com", "123456").
		Return(&models.User{ID: 1, Username: "bob", Email: "bob@test.com"}, nil)

	res := s.makeRequest(requestFields{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body:   `{"username":"bob","email":"bob@test.com","password":"123456"}`,
	})
	defer res.Body.Close()

	s.Equal(http.StatusCreated, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	s.JSONEq(`{
		"message": "User is successfully created",
		"user": {"username": "bob", "email": "bob@test.com"}
	}`, string(body))
}

func (s *AuthControllerSuite) TestRegister_Errors() {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation",
			serviceErr: &services.ValidationError{Message: "Password is too short"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Password is too short",
		},
		{
			name:       "conflict",
			serviceErr: &services.ConflictError{Message: "Email already exists"},
			wantStatus: http.StatusConflict,
			wantError:  "Email already exists",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.userServMock.On("Register", mock.Anything, "bob", "bob@test.com", "x").
				Return(nil, tt.serviceErr)

			res := s.makeRequest(requestFields{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/register",
				Body:   `{"username":"bob","email":"bob@test.com","password":"x"}`,
			})
			defer res.Body.Close()

			s.Equal(tt.wantStatus, res.StatusCode)

			body, _ := io.ReadAll(res.Body)
			s.JSONEq(`{"error": "`+tt.wantError+`"}`, string(body))
		})
	}
}

func (s *AuthControllerSuite) TestLogin() {
	s.userServMock.On("Authenticate", mock.Anything, "bob@test.com", "123456").
		Return(&models.User{ID: 42, Username: "bob", Email: "bob@test.com"}, nil)

	res := s.makeRequest(requestFields{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body:   `{"email":"bob@test.com","password":"123456"}`,
	})
	defer res.Body.Close()

	s.Equal(http.StatusAccepted, res.StatusCode)

	var parsed struct {
		User struct {
			Access   string `json:"access"`
			Refresh  string `json:"refresh"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&parsed))
	s.Equal("bob", parsed.User.Username)
	s.Equal("bob@test.com", parsed.User.Email)

	accessClaims, accessErr := tokens.ValidateUserJWT(parsed.User.Access, tokens.KindAccess, []byte(testJWTSecret))
	s.Require().NoError(accessErr)
	s.Equal(uint(42), accessClaims.UserID)

	refreshClaims, refreshErr := tokens.ValidateUserJWT(parsed.User.Refresh, tokens.KindRefresh, []byte(testJWTSecret))
	s.Require().NoError(refreshErr)
	s.Equal(uint(42), refreshClaims.UserID)
}

func (s *AuthControllerSuite) TestLogin_WrongCredentials() {
	// Неверный пароль и несуществующий email дают идентичный ответ.
	s.userServMock.On("Authenticate", mock.Anything, "bob@test.com", "bad").
		Return(nil, services.ErrWrongCredentials)
	s.userServMock.On("Authenticate", mock.Anything, "ghost@test.com", "123456").
		Return(nil, services.ErrWrongCredentials)

	bodies := make([]string, 0, 2)
	requests := []string{
		`{"email":"bob@test.com","password":"bad"}`,
		`{"email":"ghost@test.com","password":"123456"}`,
	}
	for _, reqBody := range requests {
		res := s.makeRequest(requestFields{
			Method: http.MethodPost,
			URL:    "/api/v1/auth/login",
			Body:   reqBody,
		})

		s.Equal(http.StatusUnauthorized, res.StatusCode)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		bodies = append(bodies, string(body))
	}

	s.JSONEq(`{"error": "Wrong Credentials"}`, bodies[0])
	s.Equal(bodies[0], bodies[1])
}

func (s *AuthControllerSuite) TestMe() {
	access, err := tokens.GenerateUserJWT(7, tokens.KindAccess, time.Minute, []byte(testJWTSecret))
	s.Require().NoError(err)

	s.userServMock.On("GetByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Username: "alice", Email: "alice@test.com"}, nil)

	res := s.makeRequest(requestFields{
		Method: http.MethodGet,
		URL:    "/api/v1/auth/me",
		Token:  access,
	})
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	s.JSONEq(`{"username": "alice", "email": "alice@test.com"}`, string(body))
}

func (s *AuthControllerSuite) TestMe_Unauthorized() {
	refresh, err := tokens.GenerateUserJWT(7, tokens.KindRefresh, time.Hour, []byte(testJWTSecret))
	s.Require().NoError(err)
	expired, err := tokens.GenerateUserJWT(7, tokens.KindAccess, -time.Minute, []byte(testJWTSecret))
	s.Require().NoError(err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "malformed token", token: "garbage"},
		{name: "refresh token is not an access token", token: refresh},
		{name: "expired token", token: expired},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(requestFields{
				Method: http.MethodGet,
				URL:    "/api/v1/auth/me",
				Token:  tt.token,
			})
			defer res.Body.Close()

			s.Equal(http.StatusUnauthorized, res.StatusCode)
		})
	}
	// Сервисный слой не вызывался ни разу.
	s.userServMock.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *AuthControllerSuite) TestRefresh() {
	refresh, err := tokens.GenerateUserJWT(7, tokens.KindRefresh, time.Hour, []byte(testJWTSecret))
	s.Require().NoError(err)

	res := s.makeRequest(requestFields{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/token/refresh",
		Token:  refresh,
	})
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	var parsed struct {
		Access string `json:"access"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&parsed))

	claims, validateErr := tokens.ValidateUserJWT(parsed.Access, tokens.KindAccess, []byte(testJWTSecret))
	s.Require().NoError(validateErr)
	s.Equal(uint(7), claims.UserID)
}

func (s *AuthControllerSuite) TestRefresh_RejectsAccessToken() {
	access, err := tokens.GenerateUserJWT(7, tokens.KindAccess, time.Minute, []byte(testJWTSecret))
	s.Require().NoError(err)

	res := s.makeRequest(requestFields{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/token/refresh",
		Token:  access,
	})
	defer res.Body.Close()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func TestAuthControllerSuite(t *testing.T) {
	suite.Run(t, new(AuthControllerSuite))
}
