package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/server/storage"
)

const (
	// DefaultPageLimit размер страницы по умолчанию
	DefaultPageLimit = 20
	// MaxPageLimit максимальный размер страницы
	MaxPageLimit = 100
	// SearchLimit максимум товаров в ответе поиска
	SearchLimit = 50
)

// ProductHandler обрабатывает запросы каталога
type ProductHandler struct {
	responder
	products storage.ProductStorage
}

// NewProductHandler создает новый handler каталога
func NewProductHandler(logger *slog.Logger, products storage.ProductStorage) *ProductHandler {
	return &ProductHandler{
		responder: responder{logger: logger},
		products:  products,
	}
}

// List обрабатывает GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseProductQuery(r.URL.Query())
	if err != nil {
		h.sendError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	items, total, err := h.products.ListProducts(r.Context(), query)
	if err != nil {
		h.sendInternalError(w, r, "failed to list products", err)
		return
	}

	h.sendJSON(w, newPage(toAPIProducts(items), query.Page, query.Limit, total), "", http.StatusOK)
}

// Get обрабатывает GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, CodeNotFound, "product not found", http.StatusNotFound)
			return
		}
		h.sendInternalError(w, r, "failed to get product", err)
		return
	}

	h.sendJSON(w, toAPIProduct(product), "", http.StatusOK)
}

// Search обрабатывает GET /products/search?q=
// Пустой запрос возвращает пустой список
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		h.sendJSON(w, toAPIProducts(nil), "", http.StatusOK)
		return
	}

	items, _, err := h.products.ListProducts(r.Context(), models.ProductQuery{
		Search:    q,
		SortField: models.SortByName,
		Page:      1,
		Limit:     SearchLimit,
	})
	if err != nil {
		h.sendInternalError(w, r, "failed to search products", err)
		return
	}

	h.logger.DebugContext(r.Context(), "product search", slog.String("query", q), slog.Int("results", len(items)))
	h.sendJSON(w, toAPIProducts(items), "", http.StatusOK)
}

// parseProductQuery разбирает параметры каталога
// page, limit, sort_field, sort_order, vendor_name, min_price, max_price
func parseProductQuery(values url.Values) (models.ProductQuery, error) {
	page, limit, err := parsePaging(values, DefaultPageLimit)
	if err != nil {
		return models.ProductQuery{}, err
	}

	q := models.ProductQuery{
		Page:       page,
		Limit:      limit,
		VendorName: strings.TrimSpace(values.Get("vendor_name")),
	}

	switch field := values.Get("sort_field"); field {
	case "", models.SortByPrice, models.SortByName, models.SortByCreatedAt:
		q.SortField = field
	default:
		return models.ProductQuery{}, fmt.Errorf("invalid sort_field %q: use price, name or created_at", field)
	}

	switch order := strings.ToLower(values.Get("sort_order")); order {
	case "", "asc":
	case "desc":
		q.SortDesc = true
	default:
		return models.ProductQuery{}, fmt.Errorf("invalid sort_order %q: use asc or desc", order)
	}

	if q.MinPrice, err = parsePriceParam(values, "min_price"); err != nil {
		return models.ProductQuery{}, err
	}
	if q.MaxPrice, err = parsePriceParam(values, "max_price"); err != nil {
		return models.ProductQuery{}, err
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return models.ProductQuery{}, fmt.Errorf("min_price must not exceed max_price")
	}

	return q, nil
}

// parsePaging разбирает page и limit; limit ограничен MaxPageLimit
func parsePaging(values url.Values, defaultLimit int) (int, int, error) {
	page, limit := 1, defaultLimit

	if raw := values.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("invalid page %q: must be a positive integer", raw)
		}
		page = v
	}

	if raw := values.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("invalid limit %q: must be a positive integer", raw)
		}
		limit = min(v, MaxPageLimit)
	}

	return page, limit, nil
}

func parsePriceParam(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid %s %q: must be a non-negative number", name, raw)
	}
	return &v, nil
}
