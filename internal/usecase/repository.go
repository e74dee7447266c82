package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// SessionRepository хранит активные сессии. Create присваивает сессии ID.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// CatalogRepository загружает каталог из источника (встроенный YAML, файл или Postgres).
type CatalogRepository interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

// CatalogSeeder копирует каталог в постоянное хранилище. Повторный вызов ничего не меняет.
type CatalogSeeder interface {
	Seed(ctx context.Context, catalog *domain.Catalog) error
}

// SearchCacheRepository кэширует результаты поиска. Ключ: отпечаток каталога и нормализованный запрос.
// Кэш не обязателен: ошибки только логируются.
type SearchCacheRepository interface {
	GetSearch(ctx context.Context, query string) ([]domain.CategoryGroup, bool, error)
	SetSearch(ctx context.Context, query string, groups []domain.CategoryGroup) error
}
