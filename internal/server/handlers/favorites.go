package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/storefront/internal/server/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// FavoriteHandler обрабатывает запросы избранного
type FavoriteHandler struct {
	responder
	favorites storage.FavoriteStorage
}

// NewFavoriteHandler создает новый handler избранного
func NewFavoriteHandler(logger *slog.Logger, favorites storage.FavoriteStorage) *FavoriteHandler {
	return &FavoriteHandler{
		responder: responder{logger: logger},
		favorites: favorites,
	}
}

// List обрабатывает GET /favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.favorites.ListFavorites(r.Context(), userID)
	if err != nil {
		h.sendInternalError(w, r, "failed to list favorites", err)
		return
	}

	out := make([]pkgapi.Favorite, 0, len(items))
	for _, fav := range items {
		out = append(out, toAPIFavorite(fav))
	}

	h.sendJSON(w, out, "", http.StatusOK)
}

// Toggle обрабатывает POST /favorites/{productId}.
// Сервер сам решает, добавить товар или убрать: результат в поле status.
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	productID := r.PathValue("productId")

	fav, added, err := h.favorites.ToggleFavorite(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, CodeNotFound, "product not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to toggle favorite", err)
		return
	}

	resp := pkgapi.ToggleResponse{
		Status:    pkgapi.ToggleRemoved,
		ProductID: productID,
		Message:   "Removed from favorites",
	}
	if added {
		resp = pkgapi.ToggleResponse{
			Status:    pkgapi.ToggleAdded,
			ID:        fav.ID,
			UserID:    fav.UserID,
			ProductID: fav.ProductID,
			Message:   "Added to favorites",
		}
	}

	h.logger.InfoContext(ctx, "favorite toggled",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.String("status", string(resp.Status)))

	h.sendJSON(w, resp, resp.Message, http.StatusOK)
}
