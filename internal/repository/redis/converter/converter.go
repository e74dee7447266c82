package converter

import "github.com/DRSN-tech/food-delivery/internal/domain"

// SearchResultConverter преобразует группы каталога между domain и моделью Redis.
type SearchResultConverter interface {
	ToRedisModel(query string, groups []domain.CategoryGroup) *SearchResultRedisModel
	ToDomain(model *SearchResultRedisModel) []domain.CategoryGroup
}

type searchResultConverter struct{}

func NewSearchResultConverter() SearchResultConverter {
	return searchResultConverter{}
}

func (searchResultConverter) ToRedisModel(query string, groups []domain.CategoryGroup) *SearchResultRedisModel {
	model := &SearchResultRedisModel{
		Query:  query,
		Groups: make([]CategoryGroupRedisModel, len(groups)),
	}

	for i, g := range groups {
		items := make([]CatalogItemRedisModel, len(g.Items))
		for j, item := range g.Items {
			items[j] = CatalogItemRedisModel{
				Name:       item.Name,
				PriceCents: item.PriceCents,
				Emoji:      item.Emoji,
				Category:   item.Category,
			}
		}
		model.Groups[i] = CategoryGroupRedisModel{Category: g.Category, Items: items}
	}

	return model
}

func (searchResultConverter) ToDomain(model *SearchResultRedisModel) []domain.CategoryGroup {
	if len(model.Groups) == 0 {
		return nil
	}

	groups := make([]domain.CategoryGroup, len(model.Groups))
	for i, g := range model.Groups {
		items := make([]domain.CatalogItem, len(g.Items))
		for j, item := range g.Items {
			items[j] = domain.NewCatalogItem(item.Name, item.PriceCents, item.Emoji, item.Category)
		}
		groups[i] = domain.CategoryGroup{Category: g.Category, Items: items}
	}

	return groups
}
