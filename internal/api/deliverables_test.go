package api

import (
	"net/http"
	"strconv"
	"testing"

	"toolstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeliverablesScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.createUser(t, "alice", domain.RoleUser)
	bob, _ := env.createUser(t, "bob", domain.RoleUser)

	require.NoError(t, env.DB.Create(&domain.Deliverable{
		ProductID: 1, PaymentRequestID: 10, UserID: alice.ID,
		DeliveryType: domain.DeliveryCourse, AccessLink: "https://example/a", IsActive: true,
	}).Error)
	require.NoError(t, env.DB.Create(&domain.Deliverable{
		ProductID: 2, PaymentRequestID: 11, UserID: bob.ID,
		DeliveryType: domain.DeliveryAPI, APIKey: "k", IsActive: true,
	}).Error)

	w := env.do(t, http.MethodGet, "/deliverables", nil, aliceToken)
	must(t, w, http.StatusOK)
	var resp struct {
		Deliverables []domain.Deliverable `json:"deliverables"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Deliverables, 1)
	assert.Equal(t, "https://example/a", resp.Deliverables[0].AccessLink)
}

// Deliverable lookup by payment request is ownership-checked; another user's
// deliverable reads as forbidden, same as a missing one.
func TestGetDeliverableOwnershipChecked(t *testing.T) {
	env := newTestEnv(t)
	alice, aliceToken := env.createUser(t, "alice", domain.RoleUser)
	_, bobToken := env.createUser(t, "bob", domain.RoleUser)

	require.NoError(t, env.DB.Create(&domain.Deliverable{
		ProductID: 1, PaymentRequestID: 10, UserID: alice.ID,
		DeliveryType: domain.DeliveryCourse, AccessLink: "https://example/a", IsActive: true,
	}).Error)

	w := env.do(t, http.MethodGet, "/deliverables/10", nil, aliceToken)
	must(t, w, http.StatusOK)
	var resp struct {
		Deliverable domain.Deliverable `json:"deliverable"`
	}
	decode(t, w, &resp)
	assert.Equal(t, alice.ID, resp.Deliverable.UserID)

	w = env.do(t, http.MethodGet, "/deliverables/10", nil, bobToken)
	must(t, w, http.StatusForbidden)

	w = env.do(t, http.MethodGet, "/deliverables/"+strconv.Itoa(404), nil, bobToken)
	must(t, w, http.StatusForbidden)
}
