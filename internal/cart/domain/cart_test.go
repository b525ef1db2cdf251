package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	cart := &Cart{CustomerID: 1}

	require.NoError(t, cart.AddItem(10, 2, decimal.NewFromInt(100), 3))
	require.NoError(t, cart.AddItem(20, 1, decimal.NewFromInt(50), 1))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, uint(10), cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.Items[0].UnitWeight)
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := &Cart{CustomerID: 1}

	require.NoError(t, cart.AddItem(10, 2, decimal.NewFromInt(100), 3))
	require.NoError(t, cart.AddItem(10, 3, decimal.NewFromInt(100), 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{CustomerID: 1}

	assert.ErrorIs(t, cart.AddItem(10, 0, decimal.NewFromInt(100), 3), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(10, -1, decimal.NewFromInt(100), 3), ErrInvalidQuantity)
	assert.Empty(t, cart.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	require.NoError(t, cart.AddItem(10, 2, decimal.NewFromInt(100), 3))
	require.NoError(t, cart.AddItem(20, 1, decimal.NewFromInt(50), 1))

	cart.RemoveItem(10)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(20), cart.Items[0].ProductID)

	// 移除不存在的商品是空操作
	cart.RemoveItem(999)
	assert.Len(t, cart.Items, 1)
}

func TestCart_ProductsTotal(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	require.NoError(t, cart.AddItem(10, 2, decimal.RequireFromString("19.99"), 1))
	require.NoError(t, cart.AddItem(20, 3, decimal.RequireFromString("5.50"), 1))

	// 2×19.99 + 3×5.50 = 56.48
	assert.True(t, cart.ProductsTotal().Equal(decimal.RequireFromString("56.48")))
}

func TestCart_ProductsTotal_Empty(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	assert.True(t, cart.ProductsTotal().IsZero())
}

func TestCart_TotalWeight(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	require.NoError(t, cart.AddItem(10, 2, decimal.NewFromInt(100), 7))
	require.NoError(t, cart.AddItem(20, 3, decimal.NewFromInt(50), 2))

	assert.Equal(t, 20, cart.TotalWeight())
}

func TestCart_Lines_PreservesOrder(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	require.NoError(t, cart.AddItem(30, 1, decimal.NewFromInt(10), 1))
	require.NoError(t, cart.AddItem(10, 4, decimal.NewFromInt(10), 1))
	require.NoError(t, cart.AddItem(20, 2, decimal.NewFromInt(10), 1))

	ids, qtys := cart.Lines()

	assert.Equal(t, []uint{30, 10, 20}, ids)
	assert.Equal(t, []int{1, 4, 2}, qtys)
}

func TestCart_Lines_Empty(t *testing.T) {
	cart := &Cart{CustomerID: 1}
	ids, qtys := cart.Lines()
	assert.Empty(t, ids)
	assert.Empty(t, qtys)
}
