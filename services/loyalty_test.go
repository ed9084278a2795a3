package services

import (
	"testing"

	"foodhub/entity"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	txs := []entity.LoyaltyTransaction{
		{Points: 50, Type: entity.LoyaltyEarned},
		{Points: 20, Type: entity.LoyaltyRedeemed},
		{Points: 0, Type: entity.LoyaltyEarned},
	}
	assert.Equal(t, 30, Balance(txs))
	assert.Equal(t, 0, Balance(nil))
}

func TestBalance_OrderIndependent(t *testing.T) {
	a := []entity.LoyaltyTransaction{
		{Points: 10, Type: entity.LoyaltyRedeemed},
		{Points: 50, Type: entity.LoyaltyEarned},
	}
	b := []entity.LoyaltyTransaction{
		{Points: 50, Type: entity.LoyaltyEarned},
		{Points: 10, Type: entity.LoyaltyRedeemed},
	}
	assert.Equal(t, Balance(a), Balance(b))
}

func TestEarnFromOrder(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int
	}{
		{2300, 23},
		{2399, 23}, // ปัดเศษลงเสมอ
		{99, 0},
		{100, 1},
		{0, 0},
		{-500, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EarnFromOrder(tt.subtotal), "subtotal=%d", tt.subtotal)
	}
}

func TestCanRedeem(t *testing.T) {
	assert.True(t, CanRedeem(30, 30))
	assert.True(t, CanRedeem(30, 1))
	assert.False(t, CanRedeem(30, 40))
	assert.False(t, CanRedeem(30, 0))
	assert.False(t, CanRedeem(30, -5))
	assert.False(t, CanRedeem(0, 1))
}
