package pgdb

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/DRSN-tech/food-delivery/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// CatalogRepo загружает каталог из Postgres и заливает в него каталог из другого источника.
type CatalogRepo struct {
	dbPool       transaction.Transactional
	productRepo  *ProductRepo
	categoryRepo *CategoryRepo
	logger       logger.Logger
}

func NewCatalogRepo(dbPool transaction.Transactional, productRepo *ProductRepo,
	categoryRepo *CategoryRepo, logger logger.Logger) *CatalogRepo {
	return &CatalogRepo{
		dbPool:       dbPool,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Load читает активные продукты в порядке позиций и собирает из них каталог.
func (r *CatalogRepo) Load(ctx context.Context) (*domain.Catalog, error) {
	const op = "CatalogRepo.Load"

	items, err := r.productRepo.ListCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, err := domain.NewCatalog(items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.logger.Infof("Catalog loaded. source: postgres, items: %d", catalog.Len())
	return catalog, nil
}

// Seed идемпотентно копирует каталог в Postgres одной транзакцией.
// Позиция продукта равна его индексу в каталоге.
func (r *CatalogRepo) Seed(ctx context.Context, catalog *domain.Catalog) error {
	_, err := r.seed(ctx, catalog)
	return err
}

// seed возвращает число вставленных или обновлённых продуктов.
func (r *CatalogRepo) seed(ctx context.Context, catalog *domain.Catalog) (changed int, err error) {
	const op = "CatalogRepo.Seed"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, r.dbPool)
	if err != nil {
		return 0, e.Wrap(op, err)
	}
	// При ошибке транзакция откатывается
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Warnf("Seed rollback failed: %v", e.Wrap(op, rbErr))
			}
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		err = e.Wrap(whereami.WhereAmI(), e.ErrTransactionNotFound)
		return 0, err
	}
	ctx = tr.WithTx(ctx, pgxTx)

	categoryIDs := make(map[string]int64)
	for position, item := range catalog.Items() {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			var category *domain.Category
			category, err = r.categoryRepo.Create(ctx, domain.NewCategory(item.Category))
			if err != nil {
				return 0, e.Wrap(op, err)
			}
			categoryID = category.ID
			categoryIDs[item.Category] = categoryID
		}

		var noChanges bool
		_, noChanges, err = r.productRepo.Upsert(ctx, domain.NewProduct(item.Name, item.PriceCents, item.Emoji, categoryID, position))
		if err != nil {
			return 0, e.Wrap(op, err)
		}
		if !noChanges {
			changed++
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, e.Wrap(op, err)
	}

	r.logger.Infof("Catalog seeded. items: %d, changed: %d, categories: %d", catalog.Len(), changed, len(categoryIDs))
	return changed, nil
}
