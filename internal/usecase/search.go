package usecase

import (
	"strings"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// FilterCatalog отбирает позиции, имя которых содержит query без учёта регистра,
// и группирует их по категориям. Внутри группы сохраняется порядок каталога,
// группы идут в порядке первого появления среди найденных позиций.
// Пустой запрос возвращает весь каталог; пустых групп не бывает.
func FilterCatalog(catalog *domain.Catalog, query string) []domain.CategoryGroup {
	needle := strings.ToLower(query)

	var groups []domain.CategoryGroup
	index := make(map[string]int)

	for _, item := range catalog.Items() {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}

		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, domain.CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
