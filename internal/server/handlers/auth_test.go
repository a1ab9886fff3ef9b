package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// memoryUsers UserStorageMock поверх map, ведет себя как sqlite реализация
func memoryUsers() *storage.UserStorageMock {
	var mu sync.Mutex
	users := map[string]*models.User{} // id -> user

	return &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			mu.Lock()
			defer mu.Unlock()
			for _, u := range users {
				if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
					return storage.ErrUserAlreadyExists
				}
			}
			cp := *user
			users[user.ID] = &cp
			return nil
		},
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, u := range users {
				if strings.EqualFold(u.Email, email) {
					cp := *u
					return &cp, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			mu.Lock()
			defer mu.Unlock()
			u, ok := users[userID]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			cp := *u
			return &cp, nil
		},
		UpdateProfileFunc: func(ctx context.Context, user *models.User) error {
			mu.Lock()
			defer mu.Unlock()
			u, ok := users[user.ID]
			if !ok {
				return storage.ErrUserNotFound
			}
			u.FullName = user.FullName
			u.AvatarURL = user.AvatarURL
			u.UpdatedAt = user.UpdatedAt
			return nil
		},
		GetUserActivityFunc: func(ctx context.Context, userID string) (models.UserActivity, error) {
			return models.UserActivity{FavoritesCount: 2, ReviewsCount: 1}, nil
		},
	}
}

func staticTokens() *TokenIssuerMock {
	return &TokenIssuerMock{
		GenerateAccessTokenFunc: func(userID, username string) (string, time.Time, error) {
			return "token-for-" + userID, time.Now().Add(time.Hour), nil
		},
	}
}

func newTestAuthHandler(users storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	h := NewAuthHandler(setupTestLogger(), users, tokens)
	h.bcryptCost = bcrypt.MinCost
	return h
}

func validRegisterRequest() pkgapi.RegisterRequest {
	return pkgapi.RegisterRequest{
		Email:    "jane@example.com",
		Username: "jane",
		Password: "secret1",
		FullName: "Jane Doe",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	users := memoryUsers()
	handler := newTestAuthHandler(users, staticTokens())

	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: validRegisterRequest()})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env := decodeEnvelope[pkgapi.AuthResponse](t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "User registered successfully", env.Message)
	assert.Equal(t, "jane", env.Data.User.Username)
	assert.Equal(t, "Jane Doe", env.Data.User.FullName)
	assert.NotEmpty(t, env.Data.User.ID)
	assert.Equal(t, "token-for-"+env.Data.User.ID, env.Data.Token)
	assert.NotContains(t, w.Body.String(), "password")

	// Пароль сохранен как bcrypt хеш
	require.Len(t, users.CreateUserCalls(), 1)
	stored := users.CreateUserCalls()[0].User
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	tests := []struct {
		modify  func(*pkgapi.RegisterRequest)
		name    string
		wantMsg string
	}{
		{name: "bad email", modify: func(r *pkgapi.RegisterRequest) { r.Email = "not-an-email" }, wantMsg: "not a valid address"},
		{name: "short username", modify: func(r *pkgapi.RegisterRequest) { r.Username = "ab" }, wantMsg: "username"},
		{name: "short password", modify: func(r *pkgapi.RegisterRequest) { r.Password = "123" }, wantMsg: "at least 6"},
		{name: "empty full name", modify: func(r *pkgapi.RegisterRequest) { r.FullName = "  " }, wantMsg: "full name"},
		{name: "bad avatar", modify: func(r *pkgapi.RegisterRequest) { r.AvatarURL = "ftp://x" }, wantMsg: "avatar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := memoryUsers()
			handler := newTestAuthHandler(users, staticTokens())
			req := validRegisterRequest()
			tt.modify(&req)

			w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: req})

			env := requireError(t, w, http.StatusBadRequest, CodeValidation)
			assert.Contains(t, env.Message, tt.wantMsg)
			assert.Empty(t, users.CreateUserCalls())
		})
	}
}

func TestAuthHandler_RegisterInvalidJSON(t *testing.T) {
	handler := newTestAuthHandler(memoryUsers(), staticTokens())

	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: "{broken"})

	requireError(t, w, http.StatusBadRequest, CodeValidation)
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	handler := newTestAuthHandler(memoryUsers(), staticTokens())
	req := validRegisterRequest()

	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: req})
	require.Equal(t, http.StatusCreated, w.Code)

	req.Username = "jane2"
	req.Email = "JANE@example.com"
	w = serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: req})
	requireError(t, w, http.StatusConflict, CodeConflict)
}

func TestAuthHandler_RegisterStorageError(t *testing.T) {
	users := &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			return errors.New("database is locked")
		},
	}
	handler := newTestAuthHandler(users, staticTokens())

	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: validRegisterRequest()})

	env := requireError(t, w, http.StatusInternalServerError, CodeInternal)
	assert.NotContains(t, env.Message, "locked")
}

func TestAuthHandler_Login(t *testing.T) {
	users := memoryUsers()
	handler := newTestAuthHandler(users, staticTokens())

	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: validRegisterRequest()})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		req        pkgapi.LoginRequest
		wantStatus int
		wantCode   string
	}{
		{name: "success", req: pkgapi.LoginRequest{Email: "jane@example.com", Password: "secret1"}, wantStatus: http.StatusOK},
		{name: "email case-insensitive", req: pkgapi.LoginRequest{Email: " Jane@Example.com ", Password: "secret1"}, wantStatus: http.StatusOK},
		{name: "wrong password", req: pkgapi.LoginRequest{Email: "jane@example.com", Password: "wrong"}, wantStatus: http.StatusUnauthorized, wantCode: CodeUnauthorized},
		{name: "unknown user", req: pkgapi.LoginRequest{Email: "nobody@example.com", Password: "secret1"}, wantStatus: http.StatusUnauthorized, wantCode: CodeUnauthorized},
		{name: "missing password", req: pkgapi.LoginRequest{Email: "jane@example.com"}, wantStatus: http.StatusBadRequest, wantCode: CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, handler.Login, testRequest{method: http.MethodPost, target: "/users/login", body: tt.req})

			if tt.wantCode != "" {
				env := requireError(t, w, tt.wantStatus, tt.wantCode)
				if tt.wantStatus == http.StatusUnauthorized {
					// Одинаковое сообщение для неизвестного email и неверного пароля
					assert.Equal(t, "invalid email or password", env.Message)
				}
				return
			}

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			env := decodeEnvelope[pkgapi.AuthResponse](t, w)
			assert.True(t, env.Success)
			assert.Equal(t, "jane", env.Data.User.Username)
			assert.NotEmpty(t, env.Data.Token)
		})
	}
}

func TestAuthHandler_LoginTokenError(t *testing.T) {
	users := memoryUsers()
	handler := newTestAuthHandler(users, staticTokens())
	w := serve(t, handler.Register, testRequest{method: http.MethodPost, target: "/users/register", body: validRegisterRequest()})
	require.Equal(t, http.StatusCreated, w.Code)

	handler.tokens = &TokenIssuerMock{
		GenerateAccessTokenFunc: func(userID, username string) (string, time.Time, error) {
			return "", time.Time{}, errors.New("sign failed")
		},
	}

	w = serve(t, handler.Login, testRequest{method: http.MethodPost, target: "/users/login",
		body: pkgapi.LoginRequest{Email: "jane@example.com", Password: "secret1"}})
	requireError(t, w, http.StatusInternalServerError, CodeInternal)
}
