package pgdb

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool        *pgxpool.Pool
	conv        converter.ProductConverter
	catalogConv converter.CatalogConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter, catalogConv converter.CatalogConverter) *ProductRepo {
	return &ProductRepo{
		pool:        pool,
		conv:        conv,
		catalogConv: catalogConv,
	}
}

// Upsert идемпотентно создаёт или обновляет продукт по уникальному имени.
// Запись обновляется только при изменении цены, эмодзи, категории или позиции;
// noChanges сообщает, что запись уже была актуальной.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	// VALUES ($1, $2, $3, $4, $5) name, price, emoji, category_id, position
	query := `
		WITH upsert AS (
		INSERT INTO products (name, price, emoji, category_id, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name)
		DO UPDATE SET
			price = EXCLUDED.price,
			emoji = EXCLUDED.emoji,
			category_id = EXCLUDED.category_id,
			position = EXCLUDED.position,
			updated_at = NOW()
		WHERE
			products.price IS DISTINCT FROM EXCLUDED.price OR
			products.emoji IS DISTINCT FROM EXCLUDED.emoji OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.position IS DISTINCT FROM EXCLUDED.position
		RETURNING
			id, name, price, emoji, category_id, position, created_at, updated_at, is_archived
		)
		SELECT
			id, name, price, emoji, category_id, position, created_at, updated_at, is_archived,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, name, price, emoji, category_id, position, created_at, updated_at, is_archived,
			true AS no_changes
		FROM products
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	var noChanges bool
	err = tx.QueryRow(ctx, query, product.Name, product.Price, product.Emoji, product.CategoryID, product.Position).
		Scan(
			&model.ID, &model.Name, &model.Price, &model.Emoji, &model.CategoryID, &model.Position,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived, &noChanges,
		)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), noChanges, nil
}

// ListCatalog возвращает активные продукты с названиями категорий в порядке каталога.
func (p *ProductRepo) ListCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	query := `
		SELECT pr.name, pr.price, pr.emoji, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE NOT pr.is_archived AND NOT cat.is_archived
		ORDER BY pr.position, pr.id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CatalogRowModel, 0)
	for rows.Next() {
		var model converter.CatalogRowModel
		if err := rows.Scan(&model.Name, &model.Price, &model.Emoji, &model.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.catalogConv.ToArrCatalogItem(models), nil
}
