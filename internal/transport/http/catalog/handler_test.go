package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopease/catalog-service/internal/app/catalog/domain"
	"github.com/shopease/catalog-service/internal/app/catalog/dto"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_categories"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/shopease/catalog-service/internal/app/catalog/queries/store_status"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/shopease/catalog-service/internal/app/catalog/usecases/seed_samples"
	"github.com/shopease/catalog-service/internal/pkg/clock"
)

// fakeReadModel records the parameters it was called with.
type fakeReadModel struct {
	products    []*dto.ProductDTO
	productsErr error
	categories  []string
	status      *dto.StoreStatusDTO

	gotCategory *string
	gotQ        *string
}

func (f *fakeReadModel) ListProducts(_ context.Context, category, q *string) ([]*dto.ProductDTO, error) {
	f.gotCategory, f.gotQ = category, q
	return f.products, f.productsErr
}

func (f *fakeReadModel) ListCategories(context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeReadModel) StoreStatus(context.Context) (*dto.StoreStatusDTO, error) {
	return f.status, nil
}

// fakeStore backs the write interactors.
type fakeStore struct {
	available bool
	insertID  string
	count     int64
}

func (f *fakeStore) Available() bool      { return f.available }
func (f *fakeStore) DatabaseName() string { return "testdb" }

func (f *fakeStore) InsertOne(context.Context, string, interface{}) (string, error) {
	if !f.available {
		return "", domain.ErrStoreUnavailable
	}
	return f.insertID, nil
}

func (f *fakeStore) InsertMany(_ context.Context, _ string, docs []interface{}) ([]string, error) {
	if !f.available {
		return nil, domain.ErrStoreUnavailable
	}
	return make([]string, len(docs)), nil
}

func (f *fakeStore) Count(context.Context, string, interface{}) (int64, error) {
	return f.count, nil
}

func (f *fakeStore) Find(context.Context, string, interface{}, interface{}) error { return nil }
func (f *fakeStore) Distinct(context.Context, string, string, interface{}) ([]string, error) {
	return nil, nil
}
func (f *fakeStore) Collections(context.Context) ([]string, error) { return nil, nil }

func newTestHandler(rm *fakeReadModel, store *fakeStore) http.Handler {
	clk := clock.NewFake(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	h := NewHandler(
		Commands{
			Create: create_product.NewInteractor(store, clk),
			Seed:   seed_samples.NewInteractor(store, clk),
		},
		Queries{
			List:       list_products.NewHandler(rm),
			Categories: list_categories.NewHandler(rm),
			Status:     store_status.NewHandler(rm),
		},
		zap.NewNop(),
	)
	return NewRouter(h, zap.NewNop())
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ShopEase backend running", body["message"])
}

func TestListProducts_PassesFilters(t *testing.T) {
	title := "Gourmet Dark Chocolate"
	rm := &fakeReadModel{products: []*dto.ProductDTO{
		{ID: "1", Title: &title, Price: 3.99, Category: "Food", InStock: true},
	}}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/api/products?category=Food&q=cacao", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, rm.gotCategory)
	assert.Equal(t, "Food", *rm.gotCategory)
	require.NotNil(t, rm.gotQ)
	assert.Equal(t, "cacao", *rm.gotQ)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Gourmet Dark Chocolate", out[0]["title"])
	assert.Equal(t, true, out[0]["in_stock"])
}

func TestListProducts_EmptyParamsAreAbsent(t *testing.T) {
	rm := &fakeReadModel{products: []*dto.ProductDTO{}}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/api/products?category=&q=", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, rm.gotCategory)
	assert.Nil(t, rm.gotQ)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestListProducts_OmitsAbsentDescription(t *testing.T) {
	title := "X"
	rm := &fakeReadModel{products: []*dto.ProductDTO{
		{ID: "1", Title: &title, Category: "Y", InStock: true},
	}}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/api/products", "")
	assert.NotContains(t, rec.Body.String(), "description")
}

func TestListProducts_StoreOperationFailed(t *testing.T) {
	rm := &fakeReadModel{productsErr: domain.StoreOpError("find", assert.AnError)}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "store_operation_failed", body["error"])
}

func TestListCategories(t *testing.T) {
	rm := &fakeReadModel{categories: []string{"Clothes", "Electronics", "Food", "Home"}}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Equal(t, []string{"Clothes", "Electronics", "Food", "Home"}, cats)
}

func TestCreateProduct_Created(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: true, insertID: "65f0c0ffee"})

	rec := doRequest(t, h, http.MethodPost, "/api/products",
		`{"title":"X","price":9.99,"category":"Y"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "65f0c0ffee", body["id"])
}

func TestCreateProduct_MissingFields(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: true})

	for _, body := range []string{
		`{"price":9.99,"category":"Y"}`,
		`{"title":"X","category":"Y"}`,
		`{"title":"X","price":9.99}`,
		`not json`,
	} {
		rec := doRequest(t, h, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCreateProduct_ZeroPriceAllowed(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: true, insertID: "id"})

	rec := doRequest(t, h, http.MethodPost, "/api/products",
		`{"title":"Freebie","price":0,"category":"Promo"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProduct_StoreUnavailable(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: false})

	rec := doRequest(t, h, http.MethodPost, "/api/products",
		`{"title":"X","price":9.99,"category":"Y"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "store_unavailable", body["error"])
}

func TestSeed_FirstRun(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: true})

	rec := doRequest(t, h, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["seeded"])
	assert.Equal(t, float64(5), body["count"])
}

func TestSeed_ExistingData(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: true, count: 7})

	rec := doRequest(t, h, http.MethodPost, "/api/seed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["seeded"])
	assert.Equal(t, float64(7), body["existing"])
}

func TestSeed_StoreUnavailable(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{available: false})

	rec := doRequest(t, h, http.MethodPost, "/api/seed", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStoreStatus(t *testing.T) {
	name := "shopease"
	rm := &fakeReadModel{status: &dto.StoreStatusDTO{
		Backend:          "running",
		Database:         "connected",
		DatabaseName:     &name,
		ConnectionStatus: "connected",
		Collections:      []string{"product"},
	}}
	h := newTestHandler(rm, &fakeStore{})

	rec := doRequest(t, h, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database_name":"shopease"`)
}

func TestRequestIDEchoed(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(&fakeReadModel{}, &fakeStore{})

	rec := doRequest(t, h, http.MethodOptions, "/api/products", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
