package cli

import (
	"context"

	"github.com/iudanet/storefront/internal/client/favorites"
	"github.com/iudanet/storefront/internal/client/search"
	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out services_mock.go . ProductService ReviewService FavoriteStore ProfileStore SearchSession

// ProductService каталог товаров (products.Service)
type ProductService interface {
	List(ctx context.Context, filters pkgapi.ProductFilters) (*pkgapi.ProductsPage, error)
	Get(ctx context.Context, id string) (*pkgapi.Product, error)
}

// ReviewService отзывы (reviews.Service)
type ReviewService interface {
	List(ctx context.Context, productID string, page, limit int) (*pkgapi.ReviewsPage, error)
	Create(ctx context.Context, productID string, rating int, comment string) (*pkgapi.Review, error)
	Update(ctx context.Context, reviewID string, req pkgapi.UpdateReviewRequest) (*pkgapi.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

// FavoriteStore избранное (favorites.Store)
type FavoriteStore interface {
	Load(ctx context.Context) error
	Toggle(ctx context.Context, product pkgapi.Product) (pkgapi.ToggleStatus, error)
	Snapshot() favorites.State
	IsFavorite(productID string) bool
}

// ProfileStore профиль пользователя (profile.Store)
type ProfileStore interface {
	Fetch(ctx context.Context) (*pkgapi.Profile, error)
	Update(ctx context.Context, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.Profile, error)
}

// SearchSession поиск с debounce (search.Session)
type SearchSession interface {
	Restore(ctx context.Context) error
	SetQuery(text string)
	SetFilters(ctx context.Context, filters storage.SearchFilters) error
	Wait()
	State() search.State
}
