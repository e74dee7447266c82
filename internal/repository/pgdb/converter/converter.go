package converter

import "github.com/DRSN-tech/food-delivery/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// CatalogConverter собирает позиции каталога из строк выборки.
type CatalogConverter interface {
	ToCatalogItem(model *CatalogRowModel) domain.CatalogItem
	ToArrCatalogItem(models []CatalogRowModel) []domain.CatalogItem
}

type ProductConverterImpl struct{}

func (ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Price:      entity.Price,
		Emoji:      entity.Emoji,
		CategoryID: entity.CategoryID,
		Position:   entity.Position,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}
}

func (ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:         model.ID,
		Name:       model.Name,
		Price:      model.Price,
		Emoji:      model.Emoji,
		CategoryID: model.CategoryID,
		Position:   model.Position,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}
}

type CategoryConverterImpl struct{}

func (CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{
		ID:         entity.ID,
		Name:       entity.Name,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}
}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{
		ID:         model.ID,
		Name:       model.Name,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}
}

type CatalogConverterImpl struct{}

func (CatalogConverterImpl) ToCatalogItem(model *CatalogRowModel) domain.CatalogItem {
	return domain.NewCatalogItem(model.Name, model.Price, model.Emoji, model.CategoryName)
}

func (c CatalogConverterImpl) ToArrCatalogItem(models []CatalogRowModel) []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(models))
	for i := range models {
		items[i] = c.ToCatalogItem(&models[i])
	}
	return items
}
