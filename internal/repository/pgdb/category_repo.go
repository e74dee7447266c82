package pgdb

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/tr"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	conv converter.CategoryConverter
}

func NewCategoryRepo(conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{conv: conv}
}

// Create идемпотентно создаёт категорию по имени и возвращает существующую запись при повторе.
// Работает только внутри транзакции из контекста.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories(name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at, updated_at, is_archived;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name).
		Scan(
			&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
