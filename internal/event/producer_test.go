package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nataliastore/StorefrontGo/internal/domain"
)

func TestTopicNames(t *testing.T) {
	assert.Equal(t, "storefront.cart.updated", TopicCartUpdated)
	assert.Equal(t, "storefront.cart.cleared", TopicCartCleared)
}

func TestCartUpdatedData_JSON(t *testing.T) {
	cart := domain.NewCart("sess-1")
	cart.Items = []domain.CartItem{
		{ProductID: 2, Name: "Tini Weenie Kini", Price: 4000, Image: "images/tini.jpg", Size: "M", Quantity: 2},
	}

	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
		}
	}
	data := CartUpdatedData{
		SessionID: cart.SessionID,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "sess-1", decoded["session_id"])
	assert.EqualValues(t, 2, decoded["item_count"])
	assert.EqualValues(t, 8000, decoded["subtotal"])

	lines, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.EqualValues(t, 2, line["product_id"])
	assert.Equal(t, "M", line["size"])
	assert.NotContains(t, line, "image")
}
