package yaml

import (
	"context"
	_ "embed"
	"os"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/DRSN-tech/food-delivery/pkg/money"
	"github.com/jimlawless/whereami"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// catalogFileModel: формат YAML-файла каталога.
type catalogFileModel struct {
	Items []catalogItemModel `yaml:"items"`
}

type catalogItemModel struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Emoji    string `yaml:"emoji"`
	Category string `yaml:"category"`
}

// CatalogRepo читает каталог из YAML: встроенного в бинарник или из файла.
type CatalogRepo struct {
	read   func() ([]byte, error)
	source string
	logger logger.Logger
}

// NewEmbeddedCatalogRepo возвращает репозиторий поверх встроенного каталога.
func NewEmbeddedCatalogRepo(logger logger.Logger) *CatalogRepo {
	return &CatalogRepo{
		read:   func() ([]byte, error) { return embeddedCatalog, nil },
		source: "embedded",
		logger: logger,
	}
}

// NewFileCatalogRepo возвращает репозиторий, читающий каталог из файла path.
func NewFileCatalogRepo(path string, logger logger.Logger) *CatalogRepo {
	return &CatalogRepo{
		read:   func() ([]byte, error) { return os.ReadFile(path) },
		source: path,
		logger: logger,
	}
}

func (r *CatalogRepo) Load(_ context.Context) (*domain.Catalog, error) {
	data, err := r.read()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r.logger.Infof("Catalog loaded. source: %s, items: %d", r.source, catalog.Len())
	return catalog, nil
}

// ParseCatalog разбирает YAML каталога. Цены задаются строками вида "$13.43".
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var file catalogFileModel
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	items := make([]domain.CatalogItem, 0, len(file.Items))
	for _, m := range file.Items {
		cents, err := money.ParseCents(m.Price)
		if err != nil {
			return nil, e.Wrap(m.Name, err)
		}
		items = append(items, domain.NewCatalogItem(m.Name, cents, m.Emoji, m.Category))
	}

	return domain.NewCatalog(items)
}
