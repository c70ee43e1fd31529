package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCart(t *testing.T) {
	c := NewCart("sess-1")
	assert.Equal(t, "sess-1", c.SessionID)
	assert.NotNil(t, c.Items)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.Subtotal())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestCart_Totals(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ProductID: 2, Price: 4000, Size: SizeM, Quantity: 3},
		{ProductID: 14, Price: 3500, Size: SizeS, Quantity: 1},
	}}

	assert.Equal(t, 4, c.ItemCount())
	assert.Equal(t, int64(15500), c.Subtotal())
	assert.False(t, c.IsEmpty())
}

func TestCartItem_LineTotal(t *testing.T) {
	item := CartItem{Price: 4000, Quantity: 3}
	assert.Equal(t, int64(12000), item.LineTotal())
}

func TestCart_FindItemIndex(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{ProductID: 2, Size: SizeM, Quantity: 1},
		{ProductID: 2, Size: SizeL, Quantity: 2},
		{ProductID: 7, Size: SizeM, Quantity: 1},
	}}

	tests := []struct {
		name      string
		productID int64
		size      string
		want      int
	}{
		{"first line", 2, SizeM, 0},
		{"same product different size", 2, SizeL, 1},
		{"other product", 7, SizeM, 2},
		{"size not in cart", 7, SizeXS, -1},
		{"product not in cart", 99, SizeM, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FindItemIndex(tt.productID, tt.size))
		})
	}
}
