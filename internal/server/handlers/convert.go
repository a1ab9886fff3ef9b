package handlers

import (
	"github.com/iudanet/storefront/internal/models"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func toAPIUser(u *models.User) pkgapi.User {
	return pkgapi.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAPIProduct(p *models.Product) pkgapi.Product {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return pkgapi.Product{
		ID:           p.ID,
		Name:         p.Name,
		VendorName:   p.VendorName,
		SeriesName:   p.SeriesName,
		Description:  p.Description,
		MainImage:    p.MainImage,
		ProductCode:  p.ProductCode,
		Images:       images,
		Price:        p.Price,
		ItemQuantity: p.ItemQuantity,
		CreatedAt:    p.CreatedAt,
	}
}

func toAPIProducts(items []*models.Product) []pkgapi.Product {
	out := make([]pkgapi.Product, 0, len(items))
	for _, p := range items {
		out = append(out, toAPIProduct(p))
	}
	return out
}

func toAPIFavorite(f *models.Favorite) pkgapi.Favorite {
	fav := pkgapi.Favorite{
		ID:        f.ID,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Product != nil {
		fav.Product = toAPIProduct(f.Product)
	} else {
		fav.Product = pkgapi.Product{ID: f.ProductID}
	}
	return fav
}

func toAPIReview(r *models.Review) pkgapi.Review {
	return pkgapi.Review{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		User: pkgapi.ReviewAuthor{
			Username:  r.AuthorUsername,
			AvatarURL: r.AuthorAvatar,
		},
	}
}

// newPage собирает страницу списка с метаданными пагинации
func newPage[T any](items []T, page, limit, total int) pkgapi.Page[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return pkgapi.Page[T]{
		Items:           items,
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
