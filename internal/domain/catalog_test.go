package domain

import (
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []CatalogItem {
	return []CatalogItem{
		NewCatalogItem("Apple", 1343, "🍎", "Fruits"),
		NewCatalogItem("Carrot", 315, "🥕", "Vegetables"),
		NewCatalogItem("Banana", 1766, "🍌", "Fruits"),
		NewCatalogItem("Coffee", 796, "☕", "Drinks"),
	}
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(sampleItems())
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, sampleItems(), c.Items())
	assert.Equal(t, []string{"Fruits", "Vegetables", "Drinks"}, c.Categories())
}

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   []CatalogItem
		wantErr error
	}{
		{"empty", nil, e.ErrEmptyCatalog},
		{"blank name", []CatalogItem{NewCatalogItem("  ", 1, "", "Fruits")}, e.ErrItemNameRequired},
		{"blank category", []CatalogItem{NewCatalogItem("Apple", 1, "", "")}, e.ErrCategoryRequired},
		{"negative price", []CatalogItem{NewCatalogItem("Apple", -1, "", "Fruits")}, e.ErrNegativePrice},
		{"duplicate", []CatalogItem{
			NewCatalogItem("Apple", 1, "", "Fruits"),
			NewCatalogItem("Apple", 2, "", "Fruits"),
		}, e.ErrDuplicateItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCatalog(tt.items)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalog_ItemsIsACopy(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(sampleItems())
	require.NoError(t, err)

	items := c.Items()
	items[0].PriceCents = 1

	apple, ok := c.Lookup("Apple")
	require.True(t, ok)
	assert.Equal(t, int64(1343), apple.PriceCents)
}

func TestCatalog_Contains(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(sampleItems())
	require.NoError(t, err)

	assert.True(t, c.Contains(NewCatalogItem("Apple", 1343, "🍎", "Fruits")))
	assert.False(t, c.Contains(NewCatalogItem("Apple", 1, "🍎", "Fruits")), "same name, forged price")
	assert.False(t, c.Contains(NewCatalogItem("Kiwi", 100, "🥝", "Fruits")))
}

func TestCartLine_TotalCents(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{Item: NewCatalogItem("Apple", 1343, "🍎", "Fruits"), Quantity: 2},
		{Item: NewCatalogItem("Banana", 1766, "🍌", "Fruits"), Quantity: 1},
	}

	assert.Equal(t, int64(2686), lines[0].TotalCents())
	assert.Equal(t, int64(4452), TotalCents(lines))
	assert.Equal(t, int64(0), TotalCents(nil))
}

func TestFlowState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FlowBrowsing, DeriveFlowState(true, false))
	assert.Equal(t, FlowCheckout, DeriveFlowState(false, false))
	assert.Equal(t, FlowPlaced, DeriveFlowState(false, true))
	assert.Equal(t, FlowPlaced, DeriveFlowState(true, true))

	assert.True(t, FlowCheckout.CanTransitionTo(FlowPlaced))
	assert.True(t, FlowBrowsing.CanTransitionTo(FlowCheckout))
	assert.False(t, FlowPlaced.CanTransitionTo(FlowBrowsing))
	assert.False(t, FlowPlaced.CanTransitionTo(FlowCheckout))
}

func TestOrder_SnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	lines := []CartLine{{Item: NewCatalogItem("Apple", 1343, "🍎", "Fruits"), Quantity: 1}}
	o := NewOrder(lines, 15, time.Time{})
	lines[0].Quantity = 10

	assert.Equal(t, 1, o.Lines[0].Quantity)
	assert.Equal(t, int64(1343), o.TotalCents)

	clone := o.Clone()
	clone.Lines[0].Quantity = 3
	assert.Equal(t, 1, o.Lines[0].Quantity)
}

func TestCatalog_Fingerprint(t *testing.T) {
	t.Parallel()

	base, err := NewCatalog(sampleItems())
	require.NoError(t, err)

	same, err := NewCatalog(sampleItems())
	require.NoError(t, err)
	assert.Equal(t, base.Fingerprint(), same.Fingerprint())
	assert.NotEmpty(t, base.Fingerprint())

	repriced := sampleItems()
	repriced[0].PriceCents = 999
	reordered := sampleItems()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	extended := append(sampleItems(), NewCatalogItem("Applesauce", 500, "🍏", "Fruits"))
	shifted := sampleItems()
	shifted[0].Name, shifted[0].Emoji = "Apple🍎", ""

	for name, items := range map[string][]CatalogItem{
		"repriced":  repriced,
		"reordered": reordered,
		"extended":  extended,
		"shifted":   shifted,
	} {
		c, err := NewCatalog(items)
		require.NoError(t, err, name)
		assert.NotEqual(t, base.Fingerprint(), c.Fingerprint(), name)
	}
}
