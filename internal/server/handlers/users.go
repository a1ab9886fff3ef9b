package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// UserHandler обрабатывает запросы профиля
type UserHandler struct {
	responder
	userStorage storage.UserStorage
}

// NewUserHandler создает новый handler профиля
func NewUserHandler(logger *slog.Logger, userStorage storage.UserStorage) *UserHandler {
	return &UserHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
	}
}

// Me обрабатывает GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Токен валиден, но пользователя уже нет
			h.sendError(w, CodeUnauthorized, "user no longer exists", http.StatusUnauthorized)
			return
		}
		h.sendInternalError(w, r, "failed to get user", err)
		return
	}

	h.sendProfile(w, r, user, "")
}

// Update обрабатывает PUT /users/{id}
// Пользователь может менять только свой профиль
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	if target := r.PathValue("id"); target != userID {
		h.logger.WarnContext(ctx, "attempt to update another user's profile",
			slog.String("user_id", userID), slog.String("target_id", target))
		h.sendError(w, CodeForbidden, "you can only update your own profile", http.StatusForbidden)
		return
	}

	var req pkgapi.ProfileUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, CodeNotFound, "user not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to get user", err)
		return
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if err := validation.ValidateFullName(name); err != nil {
			h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		user.FullName = name
	}
	if req.AvatarURL != nil {
		avatar := strings.TrimSpace(*req.AvatarURL)
		if err := validation.ValidateAvatarURL(avatar); err != nil {
			h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		user.AvatarURL = avatar
	}
	user.UpdatedAt = time.Now().UTC()

	if err := h.userStorage.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, CodeNotFound, "user not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to update user", err)
		return
	}

	h.logger.InfoContext(ctx, "profile updated", slog.String("user_id", userID))
	h.sendProfile(w, r, user, "Profile updated successfully")
}

func (h *UserHandler) sendProfile(w http.ResponseWriter, r *http.Request, user *models.User, message string) {
	activity, err := h.userStorage.GetUserActivity(r.Context(), user.ID)
	if err != nil {
		h.sendInternalError(w, r, "failed to get user activity", err)
		return
	}

	h.sendJSON(w, pkgapi.Profile{
		User:           toAPIUser(user),
		FavoritesCount: activity.FavoritesCount,
		ReviewsCount:   activity.ReviewsCount,
	}, message, http.StatusOK)
}
