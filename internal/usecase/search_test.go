package usecase

import (
	"strings"
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func groupNames(groups []domain.CategoryGroup) map[string][]string {
	res := make(map[string][]string, len(groups))
	for _, g := range groups {
		for _, item := range g.Items {
			res[g.Category] = append(res[g.Category], item.Name)
		}
	}
	return res
}

func TestFilterCatalog(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)

	tests := []struct {
		name       string
		query      string
		categories []string
		items      map[string][]string
	}{
		{
			name:       "case insensitive",
			query:      "APP",
			categories: []string{"Fruits"},
			items:      map[string][]string{"Fruits": {"Apple", "Pineapple", "Apple Special 1"}},
		},
		{
			name:       "group order follows first match",
			query:      "carrot",
			categories: []string{"Vegetables", "Cakes"},
			items:      map[string][]string{"Vegetables": {"Carrot"}, "Cakes": {"Carrot Cake"}},
		},
		{
			name:       "no matches",
			query:      "zzz",
			categories: nil,
			items:      map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			groups := FilterCatalog(c, tt.query)

			var categories []string
			for _, g := range groups {
				assert.NotEmpty(t, g.Items, "empty group %s", g.Category)
				categories = append(categories, g.Category)
			}
			assert.Equal(t, tt.categories, categories)
			assert.Equal(t, tt.items, groupNames(groups))
		})
	}
}

func TestFilterCatalog_EmptyQueryReturnsWholeCatalog(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	groups := FilterCatalog(c, "")

	var total int
	for _, g := range groups {
		total += len(g.Items)
	}
	assert.Equal(t, c.Len(), total)
	assert.Equal(t, []string{"Fruits", "Vegetables", "Cakes", "Drinks"}, func() []string {
		var res []string
		for _, g := range groups {
			res = append(res, g.Category)
		}
		return res
	}())
}

func TestFilterCatalog_EveryMatchAppearsOnce(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	for _, q := range []string{"a", "e", "Ca", "special", " ", "1"} {
		count := make(map[string]int)
		for _, g := range FilterCatalog(c, q) {
			for _, item := range g.Items {
				assert.True(t, strings.Contains(strings.ToLower(item.Name), strings.ToLower(q)))
				assert.Equal(t, g.Category, item.Category)
				count[item.Name]++
			}
		}

		for _, item := range c.Items() {
			want := 0
			if strings.Contains(strings.ToLower(item.Name), strings.ToLower(q)) {
				want = 1
			}
			assert.Equal(t, want, count[item.Name], "query %q item %s", q, item.Name)
		}
	}
}
