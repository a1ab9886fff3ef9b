package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/iudanet/storefront/internal/client/reviews"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

var productDetailsTmpl = template.Must(template.New("product").Funcs(template.FuncMap{
	"price": formatPrice,
	"stars": stars,
	"date":  formatDate,
}).Parse(productTemplate))

type productView struct {
	Product   *pkgapi.Product
	Reviews   []pkgapi.Review
	Average   float64
	Favorite  bool
	Logged    bool
	ReviewErr string
}

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: storefront product <id>")
	}

	product, err := c.products.Get(ctx, args[0])
	if err != nil {
		return err
	}

	view := productView{Product: product}

	page, err := c.reviews.List(ctx, product.ID, reviews.DefaultPage, reviews.DefaultLimit)
	if err != nil {
		// Карточка товара полезна и без отзывов
		view.ReviewErr = err.Error()
	} else {
		view.Reviews = page.Items
		view.Average = averageRating(page.Items)
	}

	if ok, err := c.authService.IsAuthenticated(ctx); err == nil && ok {
		view.Logged = true
		if err := c.favorites.Load(ctx); err == nil {
			view.Favorite = c.favorites.IsFavorite(product.ID)
		}
	}

	return productDetailsTmpl.Execute(c.io, view)
}

func averageRating(items []pkgapi.Review) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, r := range items {
		sum += r.Rating
	}
	return float64(sum) / float64(len(items))
}
