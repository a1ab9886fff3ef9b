package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

const (
	// DefaultPage первая страница отзывов
	DefaultPage = 1
	// DefaultLimit отзывы товара загружаются одной большой страницей
	DefaultLimit = 100
)

// Service предоставляет операции с отзывами
type Service struct {
	apiClient api.ClientAPI
}

// NewService создает сервис отзывов
func NewService(apiClient api.ClientAPI) *Service {
	return &Service{apiClient: apiClient}
}

// List возвращает отзывы о товаре; page и limit <= 0 заменяются значениями по умолчанию
func (s *Service) List(ctx context.Context, productID string, page, limit int) (*pkgapi.ReviewsPage, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	result, err := s.apiClient.ListReviews(ctx, productID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return result, nil
}

// Create добавляет отзыв к товару
func (s *Service) Create(ctx context.Context, productID string, rating int, comment string) (*pkgapi.Review, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if err := validation.ValidateRating(rating); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}
	comment = strings.TrimSpace(comment)
	if err := validation.ValidateComment(comment); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}

	review, err := s.apiClient.CreateReview(ctx, productID, pkgapi.CreateReviewRequest{
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// Update изменяет оценку и/или текст отзыва; nil поля не меняются
func (s *Service) Update(ctx context.Context, reviewID string, req pkgapi.UpdateReviewRequest) (*pkgapi.Review, error) {
	if strings.TrimSpace(reviewID) == "" {
		return nil, fmt.Errorf("review id is required")
	}
	if req.Rating == nil && req.Comment == nil {
		return nil, fmt.Errorf("nothing to update")
	}
	if req.Rating != nil {
		if err := validation.ValidateRating(*req.Rating); err != nil {
			return nil, fmt.Errorf("invalid review: %w", err)
		}
	}
	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if err := validation.ValidateComment(comment); err != nil {
			return nil, fmt.Errorf("invalid review: %w", err)
		}
		req.Comment = &comment
	}

	review, err := s.apiClient.UpdateReview(ctx, reviewID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, reviewID string) error {
	if strings.TrimSpace(reviewID) == "" {
		return fmt.Errorf("review id is required")
	}
	if err := s.apiClient.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
