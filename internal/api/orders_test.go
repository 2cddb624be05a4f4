package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"toolstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Orders freeze the submitted item list into a snapshot and always start
// pending; the total is recorded as the caller sent it.
func TestCreateOrderStoresSnapshot(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "shopper", domain.RoleUser)

	w := env.do(t, http.MethodPost, "/orders", map[string]any{
		"total_amount": 7498,
		"items": []map[string]any{
			{"product_id": 7, "quantity": 1},
			{"product_id": 9, "quantity": 2},
		},
	}, token)
	must(t, w, http.StatusCreated)

	var order domain.Order
	require.NoError(t, env.DB.Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.EqualValues(t, 7498, order.TotalAmount)

	var items []domain.OrderItem
	require.NoError(t, json.Unmarshal([]byte(order.Items), &items))
	require.Len(t, items, 2)
	assert.EqualValues(t, 7, items[0].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "shopper", domain.RoleUser)

	w := env.do(t, http.MethodPost, "/orders", map[string]any{
		"total_amount": 100,
		"items":        []map[string]any{},
	}, token)
	must(t, w, http.StatusBadRequest)
}

// Order listings are scoped to the caller; the admin listing sees everything
func TestListOrdersScopedAndAdminSeesAll(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.createUser(t, "alice", domain.RoleUser)
	bob, _ := env.createUser(t, "bob", domain.RoleUser)
	_, adminToken := env.createUser(t, "boss", domain.RoleAdmin)

	require.NoError(t, env.DB.Create(&domain.Order{UserID: alice.ID, TotalAmount: 100, Status: domain.OrderPending, Items: "[]"}).Error)
	require.NoError(t, env.DB.Create(&domain.Order{UserID: bob.ID, TotalAmount: 200, Status: domain.OrderPending, Items: "[]"}).Error)

	w := env.do(t, http.MethodGet, "/orders", nil, aliceToken)
	must(t, w, http.StatusOK)
	var mine struct {
		Orders []domain.Order `json:"orders"`
	}
	decode(t, w, &mine)
	require.Len(t, mine.Orders, 1)
	assert.Equal(t, alice.ID, mine.Orders[0].UserID)

	w = env.do(t, http.MethodGet, "/admin/orders", nil, adminToken)
	must(t, w, http.StatusOK)
	var all struct {
		Orders []domain.Order `json:"orders"`
	}
	decode(t, w, &all)
	assert.Len(t, all.Orders, 2)
}
