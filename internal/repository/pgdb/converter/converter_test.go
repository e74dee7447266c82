package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProductConverter(t *testing.T) {
	t.Parallel()

	updated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &domain.Product{
		ID: 7, Name: "Apple", Price: 1343, Emoji: "🍎", CategoryID: 2, Position: 0,
		CreatedAt: updated.Add(-time.Hour), UpdatedAt: &updated,
	}

	conv := ProductConverterImpl{}
	assert.Equal(t, p, conv.ToEntity(conv.ToModel(p)))
	assert.Nil(t, conv.ToModel(nil))
}

func TestCatalogConverter(t *testing.T) {
	t.Parallel()

	rows := []CatalogRowModel{
		{Name: "Apple", Price: 1343, Emoji: "🍎", CategoryName: "Fruits"},
		{Name: "Carrot", Price: 315, Emoji: "🥕", CategoryName: "Vegetables"},
	}

	items := CatalogConverterImpl{}.ToArrCatalogItem(rows)
	assert.Equal(t, []domain.CatalogItem{
		domain.NewCatalogItem("Apple", 1343, "🍎", "Fruits"),
		domain.NewCatalogItem("Carrot", 315, "🥕", "Vegetables"),
	}, items)
}
