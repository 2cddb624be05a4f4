package api

import (
	"net/http"
	"strconv"
	"testing"

	"toolstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every admin-tier operation refuses authenticated non-admin callers
func TestAdminRoutesForbiddenForRegularUsers(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.createUser(t, "regular", domain.RoleUser)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/admin/products", nil},
		{http.MethodPost, "/admin/products", map[string]any{"category_id": 1, "name": "X", "price": 100}},
		{http.MethodDelete, "/admin/products/1", nil},
		{http.MethodGet, "/admin/categories", nil},
		{http.MethodPost, "/admin/categories", map[string]any{"name": "X"}},
		{http.MethodGet, "/admin/orders", nil},
		{http.MethodGet, "/admin/settings", nil},
		{http.MethodPut, "/admin/settings", map[string]any{"upi_id": "a@upi"}},
		{http.MethodGet, "/admin/payments", nil},
		{http.MethodPost, "/admin/payments/1/approve", map[string]any{}},
		{http.MethodPost, "/admin/payments/1/reject", map[string]any{}},
		{http.MethodPost, "/admin/payments/1/deliver", map[string]any{"delivery_type": "course"}},
	} {
		w := env.do(t, tc.method, tc.path, tc.body, userToken)
		must(t, w, http.StatusForbidden)
	}

	// Nothing was written
	for _, model := range []any{&domain.Product{}, &domain.Category{}, &domain.AdminSettings{}, &domain.Deliverable{}} {
		var count int64
		require.NoError(t, env.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestAdminRoutesUnauthorizedWithoutToken(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/admin/products", nil, "")
	must(t, w, http.StatusUnauthorized)
}

// Admin product listing includes soft-deleted products
func TestAdminListProductsIncludesInactive(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)
	cat := env.createCategory(t, "Tools")
	env.createProduct(t, cat.ID, "Live", "", 100, true)
	env.createProduct(t, cat.ID, "Retired", "", 100, false)

	w := env.do(t, http.MethodGet, "/admin/products", nil, adminToken)
	must(t, w, http.StatusOK)
	var resp productListResponse
	decode(t, w, &resp)
	assert.ElementsMatch(t, []string{"Live", "Retired"}, productNames(resp.Products))
}

func TestUpsertProductCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)
	cat := env.createCategory(t, "Tools")

	// Create
	w := env.do(t, http.MethodPost, "/admin/products", map[string]any{
		"category_id": cat.ID,
		"name":        "Scanner",
		"description": "network probe",
		"price":       4999,
		"stock":       10,
		"features":    `["fast","quiet"]`,
	}, adminToken)
	must(t, w, http.StatusOK)
	var created struct {
		Product domain.Product `json:"product"`
	}
	decode(t, w, &created)
	require.NotZero(t, created.Product.ID)
	assert.True(t, created.Product.IsActive)

	// Update in place, deactivating it
	active := false
	w = env.do(t, http.MethodPost, "/admin/products", map[string]any{
		"id":          created.Product.ID,
		"category_id": cat.ID,
		"name":        "Scanner v2",
		"price":       5999,
		"is_active":   active,
	}, adminToken)
	must(t, w, http.StatusOK)

	var got domain.Product
	require.NoError(t, env.DB.First(&got, created.Product.ID).Error)
	assert.Equal(t, "Scanner v2", got.Name)
	assert.EqualValues(t, 5999, got.Price)
	assert.False(t, got.IsActive)

	// One row only: update never inserts
	var count int64
	require.NoError(t, env.DB.Model(&domain.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertProductUnknownIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/products", map[string]any{
		"id": 777, "category_id": 1, "name": "Ghost", "price": 1,
	}, adminToken)
	must(t, w, http.StatusNotFound)
}

// Deleting a product clears its active flag but keeps the row
func TestDeleteProductIsSoft(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)
	cat := env.createCategory(t, "Tools")
	product := env.createProduct(t, cat.ID, "Scanner", "", 100, true)

	w := env.do(t, http.MethodDelete, "/admin/products/"+strconv.Itoa(int(product.ID)), nil, adminToken)
	must(t, w, http.StatusOK)

	var got domain.Product
	require.NoError(t, env.DB.First(&got, product.ID).Error)
	assert.False(t, got.IsActive)
}

// A product mutation drops the cached list so the storefront never serves
// a stale catalog.
func TestProductUpsertInvalidatesListCache(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)
	cat := env.createCategory(t, "Tools")
	env.createProduct(t, cat.ID, "Scanner", "", 100, true)

	// Warm the cache
	w := env.do(t, http.MethodGet, "/products", nil, "")
	must(t, w, http.StatusOK)

	// Mutate through the admin surface
	w = env.do(t, http.MethodPost, "/admin/products", map[string]any{
		"category_id": cat.ID, "name": "Sniffer", "price": 900,
	}, adminToken)
	must(t, w, http.StatusOK)

	// The next read repopulates from the database and sees the new product
	w = env.do(t, http.MethodGet, "/products", nil, "")
	must(t, w, http.StatusOK)
	var resp productListResponse
	decode(t, w, &resp)
	assert.False(t, resp.Cached)
	assert.ElementsMatch(t, []string{"Scanner", "Sniffer"}, productNames(resp.Products))
}

func TestUpsertCategoryCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)

	w := env.do(t, http.MethodPost, "/admin/categories", map[string]any{
		"name": "Tools", "description": "utilities", "icon": "wrench",
	}, adminToken)
	must(t, w, http.StatusOK)
	var created struct {
		Category domain.Category `json:"category"`
	}
	decode(t, w, &created)
	require.NotZero(t, created.Category.ID)

	w = env.do(t, http.MethodPost, "/admin/categories", map[string]any{
		"id": created.Category.ID, "name": "Tooling",
	}, adminToken)
	must(t, w, http.StatusOK)

	var got domain.Category
	require.NoError(t, env.DB.First(&got, created.Category.ID).Error)
	assert.Equal(t, "Tooling", got.Name)
}

// Settings upsert: one row per admin, mandatory UPI id, omitted optionals
// cleared rather than preserved.
func TestAdminSettingsUpsert(t *testing.T) {
	env := newTestEnv(t)
	admin, adminToken := env.createUser(t, "boss", domain.RoleAdmin)

	// UPI id is mandatory
	w := env.do(t, http.MethodPut, "/admin/settings", map[string]any{"upi_name": "Shop"}, adminToken)
	must(t, w, http.StatusBadRequest)

	// First configuration
	w = env.do(t, http.MethodPut, "/admin/settings", map[string]any{
		"upi_id": "shop@upi", "upi_name": "Shop", "phone_number": "999",
	}, adminToken)
	must(t, w, http.StatusOK)

	// Second write omits the optionals, which clears them
	w = env.do(t, http.MethodPut, "/admin/settings", map[string]any{"upi_id": "shop2@upi"}, adminToken)
	must(t, w, http.StatusOK)

	var rows []domain.AdminSettings
	require.NoError(t, env.DB.Where("admin_id = ?", admin.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "shop2@upi", rows[0].UPIID)
	assert.Empty(t, rows[0].UPIName)
	assert.Empty(t, rows[0].PhoneNumber)
	assert.True(t, rows[0].IsActive)

	// getAdmin returns the saved profile
	w = env.do(t, http.MethodGet, "/admin/settings", nil, adminToken)
	must(t, w, http.StatusOK)
	var resp struct {
		Settings *domain.AdminSettings `json:"settings"`
	}
	decode(t, w, &resp)
	require.NotNil(t, resp.Settings)
	assert.Equal(t, "shop2@upi", resp.Settings.UPIID)
}

func TestAdminSettingsEmptyWhenUnconfigured(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)

	w := env.do(t, http.MethodGet, "/admin/settings", nil, adminToken)
	must(t, w, http.StatusOK)
	var resp struct {
		Settings *domain.AdminSettings `json:"settings"`
	}
	decode(t, w, &resp)
	assert.Nil(t, resp.Settings)
}
