package usecase

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t testing.TB) *domain.Catalog {
	t.Helper()

	c, err := domain.NewCatalog([]domain.CatalogItem{
		domain.NewCatalogItem("Apple", 1343, "🍎", "Fruits"),
		domain.NewCatalogItem("Banana", 1766, "🍌", "Fruits"),
		domain.NewCatalogItem("Pineapple", 1843, "🍍", "Fruits"),
		domain.NewCatalogItem("Carrot", 315, "🥕", "Vegetables"),
		domain.NewCatalogItem("Carrot Cake", 1314, "🥕", "Cakes"),
		domain.NewCatalogItem("Coffee", 796, "☕", "Drinks"),
		domain.NewCatalogItem("Apple Special 1", 1191, "🍎", "Fruits"),
	})
	require.NoError(t, err)
	return c
}

func mustItem(t testing.TB, c *domain.Catalog, name string) domain.CatalogItem {
	t.Helper()

	item, ok := c.Lookup(name)
	require.True(t, ok, name)
	return item
}

func TestCartSession_AddToCartMergesLines(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)

	require.NoError(t, s.AddToCart(mustItem(t, c, "Apple")))
	require.NoError(t, s.AddToCart(mustItem(t, c, "Apple")))
	require.NoError(t, s.AddToCart(mustItem(t, c, "Banana")))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Apple", lines[0].Item.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Banana", lines[1].Item.Name)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, int64(4452), s.CartTotalCents())
	assert.Equal(t, domain.FlowCheckout, s.FlowState())
}

func TestCartSession_AddToCartRejectsForeignItem(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)

	err := s.AddToCart(domain.NewCatalogItem("Kiwi", 100, "🥝", "Fruits"))
	assert.ErrorIs(t, err, e.ErrInvalidItem)

	forged := mustItem(t, c, "Apple")
	forged.PriceCents = 1
	assert.ErrorIs(t, s.AddToCart(forged), e.ErrInvalidItem)

	assert.True(t, s.IsCartEmpty())
}

func TestCartSession_Quantities(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)
	require.NoError(t, s.AddToCart(mustItem(t, c, "Carrot")))

	require.NoError(t, s.DecrementQuantity(0))
	assert.Equal(t, 1, s.Lines()[0].Quantity, "decrement floors at 1")

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.IncrementQuantity(0))
	}
	assert.Equal(t, 1001, s.Lines()[0].Quantity)
	assert.Equal(t, int64(1001*315), s.CartTotalCents())

	require.NoError(t, s.DecrementQuantity(0))
	assert.Equal(t, 1000, s.Lines()[0].Quantity)
	assert.Len(t, s.Lines(), 1, "lines are never removed")
}

func TestCartSession_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)

	assert.ErrorIs(t, s.IncrementQuantity(0), e.ErrIndexOutOfRange)

	require.NoError(t, s.AddToCart(mustItem(t, c, "Coffee")))
	for _, idx := range []int{-1, 1, 5} {
		assert.ErrorIs(t, s.IncrementQuantity(idx), e.ErrIndexOutOfRange, "increment %d", idx)
		assert.ErrorIs(t, s.DecrementQuantity(idx), e.ErrIndexOutOfRange, "decrement %d", idx)
	}
	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestCartSession_LinesIsACopy(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)
	require.NoError(t, s.AddToCart(mustItem(t, c, "Apple")))

	lines := s.Lines()
	lines[0].Quantity = 42

	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestCartSession_TotalMatchesSum(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	items := c.Items()
	rnd := rand.New(rand.NewPCG(7, 11))

	s := NewCartSession(c)
	assert.Equal(t, int64(0), s.CartTotalCents())

	for i := 0; i < 500; i++ {
		switch rnd.IntN(3) {
		case 0:
			require.NoError(t, s.AddToCart(items[rnd.IntN(len(items))]))
		case 1:
			if !s.IsCartEmpty() {
				require.NoError(t, s.IncrementQuantity(rnd.IntN(len(s.Lines()))))
			}
		case 2:
			if !s.IsCartEmpty() {
				require.NoError(t, s.DecrementQuantity(rnd.IntN(len(s.Lines()))))
			}
		}

		var want int64
		seen := make(map[string]bool)
		for _, line := range s.Lines() {
			assert.GreaterOrEqual(t, line.Quantity, 1)
			assert.False(t, seen[line.Item.Name], "duplicate line %s", line.Item.Name)
			seen[line.Item.Name] = true
			want += line.Item.PriceCents * int64(line.Quantity)
		}
		require.Equal(t, want, s.CartTotalCents())
	}
}

func TestCartSession_PlaceOrderOnEmptyCart(t *testing.T) {
	t.Parallel()

	s := NewCartSession(testCatalog(t))

	assert.True(t, s.IsCartEmpty())
	_, err := s.PlaceOrder()
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.False(t, s.OrderPlaced())
	assert.Equal(t, domain.FlowBrowsing, s.FlowState())

	_, ok := s.Order()
	assert.False(t, ok)
}

func TestCartSession_PlaceOrderFreezesSnapshot(t *testing.T) {
	t.Parallel()

	placedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	c := testCatalog(t)
	s := NewCartSession(c, WithClock(func() time.Time { return placedAt }))

	require.NoError(t, s.AddToCart(mustItem(t, c, "Apple")))
	first, err := s.PlaceOrder()
	require.NoError(t, err)
	assert.True(t, s.OrderPlaced())
	assert.Equal(t, domain.FlowPlaced, s.FlowState())
	assert.Equal(t, placedAt, first.PlacedAt)

	require.NoError(t, s.IncrementQuantity(0))
	require.NoError(t, s.AddToCart(mustItem(t, c, "Banana")))

	second, err := s.PlaceOrder()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, second.Lines, 1)
	assert.Equal(t, int64(1343), second.TotalCents)

	assert.Equal(t, int64(2*1343+1766), s.CartTotalCents(), "cart keeps changing after the order")

	second.Lines[0].Quantity = 99
	stored, ok := s.Order()
	require.True(t, ok)
	assert.Equal(t, 1, stored.Lines[0].Quantity)
}

func TestCartSession_DeliveryEstimateBounds(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	apple := mustItem(t, c, "Apple")
	rnd := rand.New(rand.NewPCG(1, 2))

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		s := NewCartSession(c, WithRand(rnd))
		require.NoError(t, s.AddToCart(apple))

		order, err := s.PlaceOrder()
		require.NoError(t, err)
		require.GreaterOrEqual(t, order.EstimatedDeliveryMinutes, domain.MinDeliveryMinutes)
		require.Less(t, order.EstimatedDeliveryMinutes, domain.MaxDeliveryMinutes)
		seen[order.EstimatedDeliveryMinutes] = true
	}

	assert.Len(t, seen, domain.MaxDeliveryMinutes-domain.MinDeliveryMinutes)
}

func TestCartSession_DefaultRandomSource(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	for i := 0; i < 200; i++ {
		s := NewCartSession(c)
		require.NoError(t, s.AddToCart(mustItem(t, c, "Coffee")))

		order, err := s.PlaceOrder()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, order.EstimatedDeliveryMinutes, domain.MinDeliveryMinutes)
		assert.Less(t, order.EstimatedDeliveryMinutes, domain.MaxDeliveryMinutes)
	}
}

func TestCartSession_ResetSession(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)

	s.SetSearchQuery("app")
	require.NoError(t, s.AddToCart(mustItem(t, c, "Apple")))
	_, err := s.PlaceOrder()
	require.NoError(t, err)

	s.ResetSession()

	assert.Empty(t, s.Lines())
	assert.False(t, s.OrderPlaced())
	assert.Equal(t, "", s.SearchQuery())
	assert.Equal(t, domain.FlowBrowsing, s.FlowState())

	_, ok := s.Order()
	assert.False(t, ok)
}

func TestCartSession_SearchDoesNotTouchCart(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	s := NewCartSession(c)
	require.NoError(t, s.AddToCart(mustItem(t, c, "Carrot")))

	s.SetSearchQuery("zzz")
	assert.Empty(t, s.FilteredCatalog())
	assert.Len(t, s.Lines(), 1)
	assert.Equal(t, "zzz", s.SearchQuery())
}
