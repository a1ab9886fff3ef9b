package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/auth"
	"github.com/iudanet/storefront/internal/client/favorites"
	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/reviews"
	"github.com/iudanet/storefront/internal/client/search"
	"github.com/iudanet/storefront/internal/client/storage/boltdb"
	"github.com/iudanet/storefront/internal/config"
	"github.com/iudanet/storefront/internal/server/jwt"
	"github.com/iudanet/storefront/internal/server/storage/sqlite"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

const testSecret = "integration-test-secret-0123456789"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startServer поднимает API поверх in-memory sqlite с демонстрационным каталогом
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	return startServerWith(t, nil)
}

// startServerWith как startServer, но позволяет поправить конфигурацию
func startServerWith(t *testing.T, configure func(*config.Server)) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.SeedCatalog(ctx)
	require.NoError(t, err)

	cfg := config.DefaultServer()
	cfg.JWTSecret = testSecret
	cfg.RateLimit = 1000
	cfg.RateBurst = 1000
	if configure != nil {
		configure(&cfg)
	}

	srv := New(cfg, testLogger(), store, jwt.NewService(testSecret, time.Hour), NewRegistry(), "test")
	t.Cleanup(srv.limiters.Stop)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// clientStack собирает клиентские сервисы так же, как cmd/client
type clientStack struct {
	client    *api.Client
	auth      *auth.AuthService
	favorites *favorites.Store
	products  *products.Service
	reviews   *reviews.Service
	local     *boltdb.Storage
}

func newClientStack(t *testing.T, baseURL string) *clientStack {
	t.Helper()

	local, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	client := api.NewClient(baseURL, api.WithTimeout(5*time.Second))
	authSvc := auth.NewService(client, local, testLogger())
	client.SetTokenSource(authSvc)

	return &clientStack{
		client:    client,
		auth:      authSvc,
		favorites: favorites.NewStore(client, testLogger()),
		products:  products.NewService(client),
		reviews:   reviews.NewService(client),
		local:     local,
	}
}

func (c *clientStack) register(t *testing.T, username string) {
	t.Helper()

	_, err := c.auth.Register(context.Background(), pkgapi.RegisterRequest{
		Email:    username + "@example.com",
		Username: username,
		Password: "secret123",
		FullName: "Test " + username,
	})
	require.NoError(t, err)
}

func TestEndToEnd_FavoritesSync(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c := newClientStack(t, ts.URL)
	c.register(t, "jane")

	page, err := c.products.List(ctx, pkgapi.ProductFilters{SortField: "price", SortOrder: "asc", Limit: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, "Ceramic Vase", page.Items[0].Name)
	lamp := page.Items[1]

	require.NoError(t, c.favorites.Load(ctx))
	assert.Empty(t, c.favorites.Snapshot().Favorites)

	status, err := c.favorites.Toggle(ctx, lamp)
	require.NoError(t, err)
	assert.Equal(t, pkgapi.ToggleAdded, status)
	assert.True(t, c.favorites.IsFavorite(lamp.ID))

	// Сервер хранит то же самое, что видит клиент
	serverList, err := c.client.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, serverList, 1)
	assert.Equal(t, lamp.ID, serverList[0].Product.ID)
	assert.Equal(t, serverList[0].ID, c.favorites.Snapshot().Favorites[0].ID)

	status, err = c.favorites.Toggle(ctx, lamp)
	require.NoError(t, err)
	assert.Equal(t, pkgapi.ToggleRemoved, status)
	assert.False(t, c.favorites.IsFavorite(lamp.ID))

	serverList, err = c.client.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, serverList)

	profile, err := c.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jane", profile.Username)
	assert.Equal(t, 0, profile.FavoritesCount)
}

func TestEndToEnd_ToggleUnknownProductReconciles(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c := newClientStack(t, ts.URL)
	c.register(t, "john")

	_, err := c.favorites.Toggle(ctx, pkgapi.Product{ID: "no-such-product"})
	require.Error(t, err)

	var apiErr *pkgapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	state := c.favorites.Snapshot()
	assert.NotEmpty(t, state.Err)
	assert.Empty(t, state.Favorites)
	assert.False(t, c.favorites.IsPending("no-such-product"))
}

func TestEndToEnd_ReviewsOwnership(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	alice := newClientStack(t, ts.URL)
	alice.register(t, "alice")
	bob := newClientStack(t, ts.URL)
	bob.register(t, "bob")

	found, err := alice.products.Search(ctx, "lamp")
	require.NoError(t, err)
	require.Len(t, found, 2)
	productID := found[0].ID

	review, err := alice.reviews.Create(ctx, productID, 5, "Bright and compact")
	require.NoError(t, err)
	assert.Equal(t, "alice", review.User.Username)

	comment := "hijacked"
	_, err = bob.reviews.Update(ctx, review.ID, pkgapi.UpdateReviewRequest{Comment: &comment})
	var apiErr *pkgapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	require.Error(t, bob.reviews.Delete(ctx, review.ID))

	list, err := bob.reviews.List(ctx, productID, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Bright and compact", list.Items[0].Comment)

	require.NoError(t, alice.reviews.Delete(ctx, review.ID))

	list, err = alice.reviews.List(ctx, productID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestEndToEnd_SearchSession(t *testing.T) {
	ts := startServer(t)

	c := newClientStack(t, ts.URL)
	session := search.NewSession(c.products, c.local, testLogger(), search.WithDebounce(10*time.Millisecond))
	t.Cleanup(session.Close)

	session.SetQuery("lam")
	session.SetQuery("lamp")
	session.Wait()

	state := session.State()
	assert.Equal(t, "lamp", state.Query)
	assert.Empty(t, state.Err)
	require.Len(t, state.Results, 2)
	for _, p := range state.Results {
		assert.Contains(t, p.Name, "Lamp")
	}
}

func TestEndToEnd_ProtectedRoutesRequireToken(t *testing.T) {
	ts := startServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/users/me"},
		{http.MethodGet, "/favorites"},
		{http.MethodPost, "/favorites/p1"},
		{http.MethodPost, "/products/p1/reviews"},
		{http.MethodDelete, "/reviews/r1"},
	} {
		req, err := http.NewRequest(route.method, ts.URL+route.path, nil)
		require.NoError(t, err)

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, route.path)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := startServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = ts.Client().Get(ts.URL + "/products")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)

	assert.Contains(t, string(body), `storefront_http_requests_total{method="GET",route="GET /products",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

// preflight отправляет CORS preflight так, как это делает браузер:
// имя заголовка в Access-Control-Request-Headers в нижнем регистре
func preflight(t *testing.T, ts *httptest.Server, origin string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/favorites/p1", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := startServer(t)

	resp := preflight(t, ts, "http://shop.example.com")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_CORSRestrictedOrigins(t *testing.T) {
	ts := startServerWith(t, func(cfg *config.Server) {
		cfg.AllowedOrigins = []string{"http://shop.example.com"}
	})

	resp := preflight(t, ts, "http://shop.example.com")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://shop.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = preflight(t, ts, "http://evil.example.com")
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.DefaultServer()
	cfg.JWTSecret = testSecret
	cfg.ShutdownTimeout = time.Second
	srv := New(cfg, testLogger(), store, jwt.NewService(testSecret, time.Hour), NewRegistry(), "test")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
