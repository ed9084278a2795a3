package services

import (
	"testing"

	"foodhub/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
		by   entity.Role
		want bool
	}{
		{"owner confirms pending", entity.StatusPending, entity.StatusConfirmed, entity.RoleRestaurant, true},
		{"owner cancels pending", entity.StatusPending, entity.StatusCancelled, entity.RoleRestaurant, true},
		{"owner starts preparing", entity.StatusConfirmed, entity.StatusPreparing, entity.RoleRestaurant, true},
		{"owner marks ready", entity.StatusPreparing, entity.StatusReady, entity.RoleRestaurant, true},
		{"owner hands off", entity.StatusReady, entity.StatusOutForDelivery, entity.RoleRestaurant, true},
		{"driver accepts ready order", entity.StatusReady, entity.StatusOutForDelivery, entity.RoleDriver, true},
		{"driver completes delivery", entity.StatusOutForDelivery, entity.StatusDelivered, entity.RoleDriver, true},

		// ข้ามขั้นไม่ได้
		{"no skip to out_for_delivery", entity.StatusPending, entity.StatusOutForDelivery, entity.RoleDriver, false},
		{"no skip to delivered", entity.StatusReady, entity.StatusDelivered, entity.RoleDriver, false},
		{"no cancel after confirm", entity.StatusConfirmed, entity.StatusCancelled, entity.RoleRestaurant, false},

		// role ผิด
		{"customer cannot confirm", entity.StatusPending, entity.StatusConfirmed, entity.RoleCustomer, false},
		{"driver cannot confirm", entity.StatusPending, entity.StatusConfirmed, entity.RoleDriver, false},
		{"owner cannot complete delivery", entity.StatusOutForDelivery, entity.StatusDelivered, entity.RoleRestaurant, false},

		// ทางตัน
		{"delivered is terminal", entity.StatusDelivered, entity.StatusReady, entity.RoleRestaurant, false},
		{"cancelled is terminal", entity.StatusCancelled, entity.StatusConfirmed, entity.RoleRestaurant, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to, tt.by))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, entity.StatusDelivered.Terminal())
	assert.True(t, entity.StatusCancelled.Terminal())
	assert.False(t, entity.StatusPending.Terminal())
	assert.False(t, entity.StatusOutForDelivery.Terminal())
}
