package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The workflow graph: pending fans out to the two review decisions, approved
// only ever moves to delivered, and the terminal states admit nothing.
func TestPaymentStatusTransitions(t *testing.T) {
	allowed := map[PaymentStatus][]PaymentStatus{
		PaymentPending:  {PaymentApproved, PaymentRejected},
		PaymentApproved: {PaymentDelivered},
	}
	all := []PaymentStatus{PaymentPending, PaymentApproved, PaymentRejected, PaymentDelivered}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestValidDeliveryType(t *testing.T) {
	for _, dt := range []string{DeliveryCourse, DeliveryAPI, DeliveryTool, DeliveryService} {
		assert.True(t, ValidDeliveryType(dt), dt)
	}
	assert.False(t, ValidDeliveryType("subscription"))
	assert.False(t, ValidDeliveryType(""))
}
