package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/storefront/internal/client/api"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// DefaultPageLimit размер страницы каталога по умолчанию
const DefaultPageLimit = 20

// Service предоставляет операции с каталогом товаров
type Service struct {
	apiClient api.ClientAPI
}

// NewService создает сервис каталога
func NewService(apiClient api.ClientAPI) *Service {
	return &Service{apiClient: apiClient}
}

// List возвращает страницу каталога. Page и Limit по умолчанию 1 и DefaultPageLimit.
func (s *Service) List(ctx context.Context, filters pkgapi.ProductFilters) (*pkgapi.ProductsPage, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = DefaultPageLimit
	}
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return nil, fmt.Errorf("min price %.2f is greater than max price %.2f", *filters.MinPrice, *filters.MaxPrice)
	}

	page, err := s.apiClient.ListProducts(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return page, nil
}

// Get возвращает товар по ID
func (s *Service) Get(ctx context.Context, id string) (*pkgapi.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("product id is required")
	}

	product, err := s.apiClient.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

// Search ищет товары по строке. Пустой запрос возвращает пустой результат без обращения к серверу.
func (s *Service) Search(ctx context.Context, query string) ([]pkgapi.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	products, err := s.apiClient.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
