package patternsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwbench/patterns-api/config"
	"github.com/fwbench/patterns-api/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	config.Config = config.AppConfig{
		Server:   config.ServerConfig{Port: 8080},
		Auth:     config.AuthConfig{TokenTTLMinutes: 60},
		Checkout: config.CheckoutConfig{ShippingFlatRate: 15.99, TaxRate: 0.1},
	}
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewApp(st)
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStd_Health(t *testing.T) {
	h := newTestApp(t).StdRoutes()
	rec := doJSON(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "net/http", resp["framework"])
}

func TestStd_CreateAndGetUser(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/users",
		`{"name":"Ana","email":"ana@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		User store.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.User.ID)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/users/"+created.User.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
	// The password hash must never serialize.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestStd_CreateUser_ValidationFailure(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/users",
		`{"name":"Ana","email":"nope","password":"supersecret"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/users", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStd_FormatSelection(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	rec := doJSON(t, h, http.MethodGet, "/api/v1/products?format=json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = doJSON(t, h, http.MethodGet, "/api/v1/products?format=xml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<products></products>", rec.Body.String())
}

func TestStd_UnsupportedFormat(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	for _, format := range []string{"csv", "JSON", "yaml"} {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/products?format="+format, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "format %q", format)
		assert.Contains(t, rec.Body.String(), format, "error must echo the offending value")
	}
}

func TestStd_Login(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/users",
		`{"name":"Ana","email":"ana@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/login",
		`{"email":"ana@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")

	rec = doJSON(t, h, http.MethodPost, "/api/v1/login",
		`{"email":"ana@example.com","password":"wrongpass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func createProduct(t *testing.T, h http.Handler, name string, price float64, stock int) store.Product {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"name": name, "price": price, "stock": stock})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/products", string(body))
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Product store.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Product
}

func createUser(t *testing.T, h http.Handler, email string) store.User {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/users",
		`{"name":"Ana","email":"`+email+`","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		User store.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.User
}

func TestStd_OrderAndPaymentFlow(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	u := createUser(t, h, "ana@example.com")
	p := createProduct(t, h, "Widget", 10, 5)

	body, _ := json.Marshal(map[string]any{"user_id": u.ID, "product_id": p.ID, "quantity": 2})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/orders", string(body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var orderResp struct {
		Order store.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderResp))
	assert.Equal(t, 20.0, orderResp.Order.Total)

	payBody, _ := json.Marshal(map[string]any{
		"order_id": orderResp.Order.ID, "method": "paypal", "amount": orderResp.Order.Total,
	})
	rec = doJSON(t, h, http.MethodPost, "/api/v1/payments", string(payBody))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "transaction_id")

	rec = doJSON(t, h, http.MethodGet, "/api/v1/orders/"+orderResp.Order.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"paid"`)
}

func TestStd_Payment_UnsupportedMethod(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	u := createUser(t, h, "ana@example.com")
	p := createProduct(t, h, "Widget", 10, 5)
	body, _ := json.Marshal(map[string]any{"user_id": u.ID, "product_id": p.ID, "quantity": 1})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/orders", string(body))
	require.Equal(t, http.StatusCreated, rec.Code)
	var orderResp struct {
		Order store.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderResp))

	payBody, _ := json.Marshal(map[string]any{
		"order_id": orderResp.Order.ID, "method": "pix", "amount": 10,
	})
	rec = doJSON(t, h, http.MethodPost, "/api/v1/payments", string(payBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pix")
}

func TestStd_Order_InsufficientStock(t *testing.T) {
	h := newTestApp(t).StdRoutes()

	u := createUser(t, h, "ana@example.com")
	p := createProduct(t, h, "Widget", 10, 1)
	body, _ := json.Marshal(map[string]any{"user_id": u.ID, "product_id": p.ID, "quantity": 3})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/orders", string(body))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStd_Checkout(t *testing.T) {
	app := newTestApp(t)
	h := app.StdRoutes()

	p := createProduct(t, h, "Widget", 10, 5)
	body, _ := json.Marshal(map[string]any{"product_id": p.ID, "zip_code": "04001-000", "subtotal": 100.0})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/checkout", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	var sumResp struct {
		Checkout struct {
			Total float64 `json:"total"`
		} `json:"checkout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sumResp))
	assert.InDelta(t, 125.99, sumResp.Checkout.Total, 1e-9)

	empty := createProduct(t, h, "Gone", 10, 0)
	body, _ = json.Marshal(map[string]any{"product_id": empty.ID, "zip_code": "04001-000", "subtotal": 100.0})
	rec = doJSON(t, h, http.MethodPost, "/api/v1/checkout", string(body))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStd_RateLimit(t *testing.T) {
	app := newTestApp(t)
	app.Limiter = NewClientLimiter(1, 1)
	h := app.StdRoutes()

	rec := doJSON(t, h, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodGet, "/api/v1/products", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestStd_InStockExposedToFacade(t *testing.T) {
	app := newTestApp(t)
	h := app.StdRoutes()
	p := createProduct(t, h, "Widget", 10, 1)

	ok, err := app.Store.InStock(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
