package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out token_issuer_mock.go . TokenIssuer

// TokenIssuer выпускает access token (jwt.Service)
type TokenIssuer interface {
	GenerateAccessToken(userID, username string) (string, time.Time, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	userStorage storage.UserStorage
	tokens      TokenIssuer
	bcryptCost  int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
		tokens:      tokens,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// Register обрабатывает POST /users/register
// Регистрация нового пользователя, в ответе сразу выдается токен
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pkgapi.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)

	if err := validateRegister(req); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.sendInternalError(w, r, "failed to hash password", err)
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			h.sendError(w, CodeConflict, "user with this email or username already exists", http.StatusConflict)
			return
		}
		h.sendInternalError(w, r, "failed to create user", err)
		return
	}

	token, _, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.sendInternalError(w, r, "failed to generate access token", err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, pkgapi.AuthResponse{User: toAPIUser(user), Token: token}, "User registered successfully", http.StatusCreated)
}

// Login обрабатывает POST /users/login
// Аутентификация по email и паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pkgapi.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		h.sendError(w, CodeValidation, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found")
			h.sendError(w, CodeUnauthorized, "invalid email or password", http.StatusUnauthorized)
			return
		}
		h.sendInternalError(w, r, "failed to get user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("user_id", user.ID))
		h.sendError(w, CodeUnauthorized, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, _, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.sendInternalError(w, r, "failed to generate access token", err)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, pkgapi.AuthResponse{User: toAPIUser(user), Token: token}, "Login successful", http.StatusOK)
}

func validateRegister(req pkgapi.RegisterRequest) error {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return err
	}
	if err := validation.ValidateFullName(req.FullName); err != nil {
		return err
	}
	return validation.ValidateAvatarURL(req.AvatarURL)
}
