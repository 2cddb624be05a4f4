package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"toolstore/internal/config"
	"toolstore/internal/db"
	"toolstore/internal/domain"
	"toolstore/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"
const testOwnerOpenID = "owner-open-id"

// testEnv bundles the collaborators a handler test needs: an in-memory
// SQLite database migrated to the real schema, an in-process Redis, and the
// full router wired exactly like the server wires it.
type testEnv struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine
}

// newTestEnv builds a fresh environment per test
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// In-memory database; a single connection so every query sees one store
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(db.Models()...))

	// In-process Redis for the cache paths
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{JWTSecret: testSecret, OwnerOpenID: testOwnerOpenID}
	r := gin.New()
	SetupRouter(r, gdb, rdb, cfg)
	return &testEnv{DB: gdb, Redis: rdb, Router: r}
}

// createUser inserts a user with the given role and returns it with a
// valid session token.
func (e *testEnv) createUser(t *testing.T, openID, role string) (domain.User, string) {
	t.Helper()
	user := domain.User{OpenID: openID, Name: "User " + openID, Role: role}
	require.NoError(t, e.DB.Create(&user).Error)
	token, err := utils.GenerateJWT(user.ID, testSecret)
	require.NoError(t, err)
	return user, token
}

// createCategory inserts a category
func (e *testEnv) createCategory(t *testing.T, name string) domain.Category {
	t.Helper()
	cat := domain.Category{Name: name}
	require.NoError(t, e.DB.Create(&cat).Error)
	return cat
}

// createProduct inserts a product
func (e *testEnv) createProduct(t *testing.T, categoryID uint, name, description string, price int64, active bool) domain.Product {
	t.Helper()
	p := domain.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		IsActive:    active,
	}
	require.NoError(t, e.DB.Create(&p).Error)
	return p
}

// do runs one request against the router. A non-nil body is JSON-encoded;
// a non-empty token is sent as a bearer header.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// paymentPath builds the user-facing payment request path
func paymentPath(id uint) string {
	return "/payments/" + strconv.Itoa(int(id))
}

// reqPath builds an admin payment action path, e.g. /admin/payments/7/approve
func reqPath(id uint, action string) string {
	return "/admin/payments/" + strconv.Itoa(int(id)) + "/" + action
}

// decode unmarshals a response body into dest
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// must asserts a status code, printing the body on mismatch
func must(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, "unexpected status, body: %s", w.Body.String())
}
