package converter

// SearchResultRedisModel: закэшированный результат поиска по каталогу.
type SearchResultRedisModel struct {
	Query  string                    `json:"query"`
	Groups []CategoryGroupRedisModel `json:"groups"`
}

type CategoryGroupRedisModel struct {
	Category string                  `json:"category"`
	Items    []CatalogItemRedisModel `json:"items"`
}

type CatalogItemRedisModel struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Emoji      string `json:"emoji"`
	Category   string `json:"category"`
}
