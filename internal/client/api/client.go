package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает все операции storefront API, которые использует клиент
type ClientAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
	CurrentUser(ctx context.Context) (*pkgapi.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.Profile, error)

	ListProducts(ctx context.Context, filters pkgapi.ProductFilters) (*pkgapi.ProductsPage, error)
	GetProduct(ctx context.Context, id string) (*pkgapi.Product, error)
	SearchProducts(ctx context.Context, query string) ([]pkgapi.Product, error)

	ListReviews(ctx context.Context, productID string, page, limit int) (*pkgapi.ReviewsPage, error)
	CreateReview(ctx context.Context, productID string, req pkgapi.CreateReviewRequest) (*pkgapi.Review, error)
	UpdateReview(ctx context.Context, reviewID string, req pkgapi.UpdateReviewRequest) (*pkgapi.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error

	ListFavorites(ctx context.Context) ([]pkgapi.Favorite, error)
	ToggleFavorite(ctx context.Context, productID string) (*pkgapi.ToggleResponse, error)
}

// TokenSource отдает текущий bearer token. Пустая строка означает "без авторизации".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ErrMissingData сервер ответил success без поля data там, где оно обязательно
var ErrMissingData = errors.New("response has no data")

// DefaultTimeout время ожидания ответа сервера по умолчанию
const DefaultTimeout = 10 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTokenSource подключает источник bearer token
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithTimeout переопределяет таймаут HTTP клиента
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource подключает источник токена после создания клиента.
// Нужен, когда auth сервис сам зависит от клиента.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
	resp, err := do[pkgapi.AuthResponse](ctx, c, http.MethodPost, "/users/login", req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
	resp, err := do[pkgapi.AuthResponse](ctx, c, http.MethodPost, "/users/register", req)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// CurrentUser возвращает профиль авторизованного пользователя
func (c *Client) CurrentUser(ctx context.Context) (*pkgapi.Profile, error) {
	resp, err := do[pkgapi.Profile](ctx, c, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("get current user failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile обновляет профиль пользователя
func (c *Client) UpdateProfile(ctx context.Context, userID string, req pkgapi.ProfileUpdateRequest) (*pkgapi.Profile, error) {
	resp, err := do[pkgapi.Profile](ctx, c, http.MethodPut, "/users/"+url.PathEscape(userID), req)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}
	return &resp, nil
}

// ListProducts возвращает страницу каталога с учетом фильтров
func (c *Client) ListProducts(ctx context.Context, filters pkgapi.ProductFilters) (*pkgapi.ProductsPage, error) {
	path := "/products"
	if query := productQuery(filters).Encode(); query != "" {
		path += "?" + query
	}
	resp, err := do[pkgapi.ProductsPage](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list products failed: %w", err)
	}
	return &resp, nil
}

// GetProduct возвращает товар по ID
func (c *Client) GetProduct(ctx context.Context, id string) (*pkgapi.Product, error) {
	resp, err := do[pkgapi.Product](ctx, c, http.MethodGet, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("get product failed: %w", err)
	}
	return &resp, nil
}

// SearchProducts выполняет полнотекстовый поиск по каталогу
func (c *Client) SearchProducts(ctx context.Context, query string) ([]pkgapi.Product, error) {
	path := "/products/search?q=" + url.QueryEscape(query)
	resp, err := do[[]pkgapi.Product](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("search products failed: %w", err)
	}
	return resp, nil
}

// ListReviews возвращает отзывы о товаре
func (c *Client) ListReviews(ctx context.Context, productID string, page, limit int) (*pkgapi.ReviewsPage, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	path := fmt.Sprintf("/products/%s/reviews?%s", url.PathEscape(productID), values.Encode())

	resp, err := do[pkgapi.ReviewsPage](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list reviews failed: %w", err)
	}
	return &resp, nil
}

// CreateReview добавляет отзыв к товару
func (c *Client) CreateReview(ctx context.Context, productID string, req pkgapi.CreateReviewRequest) (*pkgapi.Review, error) {
	path := fmt.Sprintf("/products/%s/reviews", url.PathEscape(productID))
	resp, err := do[pkgapi.Review](ctx, c, http.MethodPost, path, req)
	if err != nil {
		return nil, fmt.Errorf("create review failed: %w", err)
	}
	return &resp, nil
}

// UpdateReview изменяет отзыв
func (c *Client) UpdateReview(ctx context.Context, reviewID string, req pkgapi.UpdateReviewRequest) (*pkgapi.Review, error) {
	resp, err := do[pkgapi.Review](ctx, c, http.MethodPut, "/reviews/"+url.PathEscape(reviewID), req)
	if err != nil {
		return nil, fmt.Errorf("update review failed: %w", err)
	}
	return &resp, nil
}

// DeleteReview удаляет отзыв
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	if _, err := do[json.RawMessage](ctx, c, http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), nil); err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	return nil
}

// ListFavorites возвращает избранное текущего пользователя
func (c *Client) ListFavorites(ctx context.Context) ([]pkgapi.Favorite, error) {
	resp, err := do[[]pkgapi.Favorite](ctx, c, http.MethodGet, "/favorites", nil)
	if err != nil {
		return nil, fmt.Errorf("list favorites failed: %w", err)
	}
	// "data": null не то же самое, что пустой список
	if resp == nil {
		return nil, fmt.Errorf("list favorites failed: %w", ErrMissingData)
	}
	return resp, nil
}

// ToggleFavorite переключает товар в избранном; результат решает сервер
func (c *Client) ToggleFavorite(ctx context.Context, productID string) (*pkgapi.ToggleResponse, error) {
	resp, err := do[pkgapi.ToggleResponse](ctx, c, http.MethodPost, "/favorites/"+url.PathEscape(productID), nil)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite failed: %w", err)
	}
	return &resp, nil
}

func productQuery(filters pkgapi.ProductFilters) url.Values {
	values := url.Values{}
	if filters.Page > 0 {
		values.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		values.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.SortField != "" {
		values.Set("sort_field", filters.SortField)
	}
	if filters.SortOrder != "" {
		values.Set("sort_order", filters.SortOrder)
	}
	if vendor := strings.TrimSpace(filters.VendorName); vendor != "" {
		values.Set("vendor_name", vendor)
	}
	if filters.MinPrice != nil {
		values.Set("min_price", strconv.FormatFloat(*filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice != nil {
		values.Set("max_price", strconv.FormatFloat(*filters.MaxPrice, 'f', -1, 64))
	}
	return values
}

// do выполняет HTTP запрос и разворачивает envelope ответа
func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	respBody, statusCode, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	var envelope pkgapi.Envelope[T]
	decodeErr := json.Unmarshal(respBody, &envelope)

	// Проверяем статус код
	if statusCode < 200 || statusCode >= 300 {
		if decodeErr == nil && (envelope.Message != "" || envelope.Error != nil) {
			envelope.Success = false
			return envelope.Unwrap(statusCode)
		}
		return zero, &pkgapi.Error{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("request failed with status %d: %s", statusCode, strings.TrimSpace(string(respBody))),
		}
	}

	if decodeErr != nil {
		return zero, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return envelope.Unwrap(statusCode)
}

// doRequest выполняет HTTP запрос и возвращает тело ответа
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, resp.StatusCode, nil
}
