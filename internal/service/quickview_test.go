package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nataliastore/StorefrontGo/internal/repository/memory"
)

func newQuickViewService() *QuickViewService {
	return NewQuickViewService(memory.NewSeededCatalogRepository(), newTestLogger())
}

func TestQuickViewOpen(t *testing.T) {
	svc := newQuickViewService()

	res, err := svc.Open(t.Context(), "sess-1", 2)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	require.NotNil(t, res.View)
	assert.Equal(t, "Tini Weenie Kini", res.View.Product.Name)
	assert.Equal(t, "C$40.00", res.View.PriceDisplay)
	assert.Equal(t, "Best Seller", res.View.BadgeLabel)
	assert.Equal(t, 1, res.View.Quantity)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, res.View.Sizes)
	assert.Equal(t, "Add to Bag", res.View.ActionLabel)
	assert.True(t, res.View.ActionEnabled)
}

func TestQuickViewOpen_SoldOutDisablesAction(t *testing.T) {
	svc := newQuickViewService()

	res, err := svc.Open(t.Context(), "sess-1", 1)
	require.NoError(t, err)
	assert.False(t, res.Skipped, "sold-out products still open for viewing")
	assert.Equal(t, "Sold Out", res.View.ActionLabel)
	assert.False(t, res.View.ActionEnabled)
}

func TestQuickViewOpen_UnknownProductSkips(t *testing.T) {
	svc := newQuickViewService()

	res, err := svc.Open(t.Context(), "sess-1", 999)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipReasonUnknownProduct, res.SkipReason)
	assert.Nil(t, res.View)
}

func TestQuickViewOpen_ReplacesOpenView(t *testing.T) {
	svc := newQuickViewService()

	_, err := svc.Open(t.Context(), "sess-1", 2)
	require.NoError(t, err)
	_, err = svc.AdjustQuantity(t.Context(), "sess-1", 4)
	require.NoError(t, err)

	// Opening another product resets the pending quantity.
	res, err := svc.Open(t.Context(), "sess-1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.View.Product.ID)
	assert.Equal(t, 1, res.View.Quantity)
}

func TestQuickViewAdjustQuantity(t *testing.T) {
	svc := newQuickViewService()

	_, err := svc.Open(t.Context(), "sess-1", 2)
	require.NoError(t, err)

	res, err := svc.AdjustQuantity(t.Context(), "sess-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, res.View.Quantity)

	res, err = svc.AdjustQuantity(t.Context(), "sess-1", -10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.View.Quantity, "quantity floors at 1")
}

func TestQuickViewAdjustQuantity_NoOpenView(t *testing.T) {
	svc := newQuickViewService()

	res, err := svc.AdjustQuantity(t.Context(), "sess-1", 1)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, SkipReasonNoOpenView, res.SkipReason)
}

func TestQuickViewGet(t *testing.T) {
	svc := newQuickViewService()

	res, err := svc.Get(t.Context(), "sess-1")
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	_, err = svc.Open(t.Context(), "sess-1", 5)
	require.NoError(t, err)

	res, err = svc.Get(t.Context(), "sess-1")
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int64(5), res.View.Product.ID)
}

func TestQuickViewClose_Idempotent(t *testing.T) {
	svc := newQuickViewService()

	_, err := svc.Open(t.Context(), "sess-1", 2)
	require.NoError(t, err)

	require.NoError(t, svc.Close(t.Context(), "sess-1"))
	require.NoError(t, svc.Close(t.Context(), "sess-1"), "closing an already-closed view is fine")

	res, err := svc.Get(t.Context(), "sess-1")
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestQuickView_SessionsAreIsolated(t *testing.T) {
	svc := newQuickViewService()

	_, err := svc.Open(t.Context(), "sess-1", 2)
	require.NoError(t, err)
	_, err = svc.Open(t.Context(), "sess-2", 3)
	require.NoError(t, err)

	res1, err := svc.Get(t.Context(), "sess-1")
	require.NoError(t, err)
	res2, err := svc.Get(t.Context(), "sess-2")
	require.NoError(t, err)

	assert.Equal(t, int64(2), res1.View.Product.ID)
	assert.Equal(t, int64(3), res2.View.Product.ID)
}
