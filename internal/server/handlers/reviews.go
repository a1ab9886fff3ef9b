package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// DefaultReviewsLimit размер страницы отзывов по умолчанию
const DefaultReviewsLimit = 20

// ReviewHandler обрабатывает запросы отзывов
type ReviewHandler struct {
	responder
	reviews  storage.ReviewStorage
	products storage.ProductStorage
}

// NewReviewHandler создает новый handler отзывов
func NewReviewHandler(logger *slog.Logger, reviews storage.ReviewStorage, products storage.ProductStorage) *ReviewHandler {
	return &ReviewHandler{
		responder: responder{logger: logger},
		reviews:   reviews,
		products:  products,
	}
}

// List обрабатывает GET /products/{id}/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := r.PathValue("id")

	page, limit, err := parsePaging(r.URL.Query(), DefaultReviewsLimit)
	if err != nil {
		h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, CodeNotFound, "product not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to get product", err)
		return
	}

	items, total, err := h.reviews.ListReviews(ctx, productID, page, limit)
	if err != nil {
		h.sendInternalError(w, r, "failed to list reviews", err)
		return
	}

	out := make([]pkgapi.Review, 0, len(items))
	for _, review := range items {
		out = append(out, toAPIReview(review))
	}

	h.sendJSON(w, newPage(out, page, limit, total), "", http.StatusOK)
}

// Create обрабатывает POST /products/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req pkgapi.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Comment = strings.TrimSpace(req.Comment)
	if err := validation.ValidateRating(req.Rating); err != nil {
		h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateComment(req.Comment); err != nil {
		h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	review := &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: r.PathValue("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.reviews.CreateReview(ctx, review); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, CodeNotFound, "product not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to create review", err)
		return
	}

	// Перечитываем, чтобы вернуть данные автора
	created, err := h.reviews.GetReview(ctx, review.ID)
	if err != nil {
		h.sendInternalError(w, r, "failed to get created review", err)
		return
	}

	h.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.String("user_id", userID))

	h.sendJSON(w, toAPIReview(created), "Review created successfully", http.StatusCreated)
}

// Update обрабатывает PUT /reviews/{id}; менять можно только свой отзыв
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	review, ok := h.ownedReview(w, r)
	if !ok {
		return
	}

	var req pkgapi.UpdateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, CodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Rating == nil && req.Comment == nil {
		h.sendError(w, CodeValidation, "nothing to update: rating or comment is required", http.StatusBadRequest)
		return
	}

	if req.Rating != nil {
		if err := validation.ValidateRating(*req.Rating); err != nil {
			h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if err := validation.ValidateComment(comment); err != nil {
			h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		review.Comment = comment
	}
	review.UpdatedAt = time.Now().UTC()

	if err := h.reviews.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			h.sendError(w, CodeNotFound, "review not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to update review", err)
		return
	}

	h.sendJSON(w, toAPIReview(review), "Review updated successfully", http.StatusOK)
}

// Delete обрабатывает DELETE /reviews/{id}; удалять можно только свой отзыв
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	review, ok := h.ownedReview(w, r)
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), review.ID); err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			h.sendError(w, CodeNotFound, "review not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to delete review", err)
		return
	}

	h.logger.InfoContext(r.Context(), "review deleted", slog.String("review_id", review.ID))
	h.sendJSON(w, map[string]string{"id": review.ID}, "Review deleted successfully", http.StatusOK)
}

// ownedReview загружает отзыв из пути и проверяет, что он принадлежит текущему пользователю.
// При ошибке ответ уже отправлен.
func (h *ReviewHandler) ownedReview(w http.ResponseWriter, r *http.Request) (*models.Review, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, CodeUnauthorized, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	review, err := h.reviews.GetReview(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			h.sendError(w, CodeNotFound, "review not found", http.StatusNotFound)
			return nil, false
		}
		h.sendInternalError(w, r, "failed to get review", err)
		return nil, false
	}

	if review.UserID != userID {
		h.logger.WarnContext(ctx, "attempt to modify another user's review",
			slog.String("user_id", userID), slog.String("review_id", review.ID))
		h.sendError(w, CodeForbidden, "you can only modify your own reviews", http.StatusForbidden)
		return nil, false
	}

	return review, true
}
