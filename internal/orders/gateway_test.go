package orders

import (
	"testing"
	"time"

	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "ancienne", CreatedAt: base},
		{ID: "recente", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "milieu", CreatedAt: base.Add(time.Hour)},
	}

	sortNewestFirst(orders)

	got := []string{orders[0].ID, orders[1].ID, orders[2].ID}
	assert.Equal(t, []string{"recente", "milieu", "ancienne"}, got)
}

func TestDecodeOrder(t *testing.T) {
	var order models.Order
	decodeOrder(&order,
		`[{"product_id":1,"name":"iPhone 14","price":69999,"qty":2}]`,
		`{"fullName":"Asha Verma","phone":"9876543210","street":"12 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "iPhone 14", order.Items[0].Name)
	assert.Equal(t, "Bengaluru", order.Address.City)
}

func TestDecodeOrder_BadJSONLeavesOrderUsable(t *testing.T) {
	order := models.Order{ID: "order-1", Total: 95097}
	decodeOrder(&order, `pas du json`, `{}`)

	assert.Empty(t, order.Items)
	assert.Equal(t, "order-1", order.ID)
}
