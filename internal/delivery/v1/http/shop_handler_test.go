package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/memory"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog, err := domain.NewCatalog([]domain.CatalogItem{
		domain.NewCatalogItem("Apple", 1343, "🍎", "Fruits"),
		domain.NewCatalogItem("Banana", 1766, "🍌", "Fruits"),
		domain.NewCatalogItem("Pineapple", 1843, "🍍", "Fruits"),
		domain.NewCatalogItem("Carrot", 315, "🥕", "Vegetables"),
	})
	require.NoError(t, err)

	log := logger.NewNopLogger()
	uc := usecase.NewShopUC(catalog, memory.NewSessionRepo(), nil, nil, log)

	mux := chi.NewRouter()
	NewRouter(mux, log).Init(uc)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, session, body string, out interface{}) int {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func loginSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	var res LoginResponse
	code := doRequest(t, srv, http.MethodPost, "/api/v1/login", "", `{"email":"a@b.c","password":"x"}`, &res)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, res.SessionID)
	return res.SessionID
}

func TestShopHandler_CheckoutFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	id := loginSession(t, srv)

	var cart CartResponse
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", id, `{"name":"Apple"}`, &cart))
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", id, `{"name":"Apple"}`, &cart))
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", id, `{"name":"Banana"}`, &cart))

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "$26.86", cart.Lines[0].LineTotal)
	assert.Equal(t, int64(4452), cart.TotalCents)
	assert.Equal(t, "$44.52", cart.Total)
	assert.Equal(t, "checkout", cart.FlowState)

	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/lines/1/increment", id, "", &cart))
	assert.Equal(t, 2, cart.Lines[1].Quantity)
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/lines/1/decrement", id, "", &cart))
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/lines/1/decrement", id, "", &cart))
	assert.Equal(t, 1, cart.Lines[1].Quantity)

	var order OrderResponse
	require.Equal(t, http.StatusCreated, doRequest(t, srv, http.MethodPost, "/api/v1/orders", id, "", &order))
	assert.Equal(t, int64(4452), order.TotalCents)
	assert.Equal(t, "$44.52", order.Total)
	assert.GreaterOrEqual(t, order.EstimatedDeliveryMinutes, domain.MinDeliveryMinutes)
	assert.Less(t, order.EstimatedDeliveryMinutes, domain.MaxDeliveryMinutes)

	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/cart", id, "", &cart))
	assert.True(t, cart.OrderPlaced)
	assert.Equal(t, "placed", cart.FlowState)
	require.NotNil(t, cart.Order)
	assert.Equal(t, order.EstimatedDeliveryMinutes, cart.Order.EstimatedDeliveryMinutes)
}

func TestShopHandler_Catalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	id := loginSession(t, srv)

	var catalog CatalogResponse
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/catalog", id, "", &catalog))
	assert.Equal(t, "", catalog.Query)
	require.Len(t, catalog.Groups, 2)
	assert.Equal(t, "Fruits", catalog.Groups[0].Category)
	assert.Equal(t, "$13.43", catalog.Groups[0].Items[0].Price)

	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/catalog?q=APP", id, "", &catalog))
	assert.Equal(t, "APP", catalog.Query)
	require.Len(t, catalog.Groups, 1)
	assert.Len(t, catalog.Groups[0].Items, 2)

	// Без q используется сохранённый запрос.
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/catalog", id, "", &catalog))
	assert.Equal(t, "APP", catalog.Query)

	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/catalog?q=", id, "", &catalog))
	assert.Len(t, catalog.Groups, 2)
}

func TestShopHandler_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	id := loginSession(t, srv)

	tests := []struct {
		name    string
		method  string
		path    string
		session string
		body    string
		code    int
	}{
		{"missing header", http.MethodGet, "/api/v1/cart", "", "", http.StatusUnauthorized},
		{"unknown session", http.MethodGet, "/api/v1/cart", "nope", "", http.StatusUnauthorized},
		{"unknown item", http.MethodPost, "/api/v1/cart/items", id, `{"name":"Kiwi"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/cart/items", id, `{"name":`, http.StatusBadRequest},
		{"malformed index", http.MethodPost, "/api/v1/cart/lines/abc/increment", id, "", http.StatusBadRequest},
		{"index out of range", http.MethodPost, "/api/v1/cart/lines/0/decrement", id, "", http.StatusNotFound},
		{"empty cart order", http.MethodPost, "/api/v1/orders", id, "", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res ErrorResponse
			code := doRequest(t, srv, tt.method, tt.path, tt.session, tt.body, &res)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.code, res.Code)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestShopHandler_ResetAndLogout(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	id := loginSession(t, srv)

	var cart CartResponse
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", id, `{"name":"Carrot"}`, &cart))
	require.Equal(t, http.StatusCreated, doRequest(t, srv, http.MethodPost, "/api/v1/orders", id, "", nil))

	require.Equal(t, http.StatusNoContent, doRequest(t, srv, http.MethodPost, "/api/v1/session/reset", id, "", nil))
	require.Equal(t, http.StatusOK, doRequest(t, srv, http.MethodGet, "/api/v1/cart", id, "", &cart))
	assert.True(t, cart.IsEmpty)
	assert.False(t, cart.OrderPlaced)
	assert.Nil(t, cart.Order)
	assert.Equal(t, "browsing", cart.FlowState)

	require.Equal(t, http.StatusNoContent, doRequest(t, srv, http.MethodPost, "/api/v1/logout", id, "", nil))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, srv, http.MethodGet, "/api/v1/cart", id, "", nil))
}

func TestShopHandler_LoginWithoutBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	var res LoginResponse
	require.Equal(t, http.StatusCreated, doRequest(t, srv, http.MethodPost, "/api/v1/login", "", "", &res))
	assert.NotEmpty(t, res.SessionID)
}
