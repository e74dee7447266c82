package domain

import (
	"strconv"
	"strings"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/cespare/xxhash/v2"
)

// CatalogItem описывает позицию каталога. Цена хранится в центах.
type CatalogItem struct {
	Name       string
	PriceCents int64
	Emoji      string
	Category   string
}

func NewCatalogItem(name string, priceCents int64, emoji string, category string) CatalogItem {
	return CatalogItem{
		Name:       name,
		PriceCents: priceCents,
		Emoji:      emoji,
		Category:   category,
	}
}

// Catalog: неизменяемый упорядоченный список позиций. Создаётся один раз при старте.
type Catalog struct {
	items       []CatalogItem
	byName      map[string]int
	fingerprint string
}

// NewCatalog проверяет позиции и строит каталог.
// Каталог не может быть пустым, имена уникальны и непусты, цены неотрицательны.
func NewCatalog(items []CatalogItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, e.ErrEmptyCatalog
	}

	c := &Catalog{
		items:  make([]CatalogItem, len(items)),
		byName: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, e.ErrItemNameRequired
		}
		if strings.TrimSpace(item.Category) == "" {
			return nil, e.Wrap(item.Name, e.ErrCategoryRequired)
		}
		if item.PriceCents < 0 {
			return nil, e.Wrap(item.Name, e.ErrNegativePrice)
		}
		if _, ok := c.byName[item.Name]; ok {
			return nil, e.Wrap(item.Name, e.ErrDuplicateItem)
		}
		c.byName[item.Name] = i
	}

	c.fingerprint = fingerprint(c.items)
	return c, nil
}

// Fingerprint идентифицирует содержимое каталога: любые отличия в составе, порядке,
// ценах, эмодзи или категориях дают другой отпечаток.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func fingerprint(items []CatalogItem) string {
	h := xxhash.New()
	for _, item := range items {
		// поля разделены \x00, чтобы ("ab","c") и ("a","bc") не совпадали
		_, _ = h.WriteString(item.Name)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(strconv.FormatInt(item.PriceCents, 10))
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(item.Emoji)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(item.Category)
		_, _ = h.WriteString("\x00")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Items возвращает копию позиций в порядке каталога.
func (c *Catalog) Items() []CatalogItem {
	res := make([]CatalogItem, len(c.items))
	copy(res, c.items)
	return res
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup ищет позицию по имени.
func (c *Catalog) Lookup(name string) (CatalogItem, bool) {
	i, ok := c.byName[name]
	if !ok {
		return CatalogItem{}, false
	}
	return c.items[i], true
}

// Contains сообщает, является ли item позицией каталога (совпадают имя и все поля).
func (c *Catalog) Contains(item CatalogItem) bool {
	found, ok := c.Lookup(item.Name)
	return ok && found == item
}

// Categories возвращает категории в порядке первого появления.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var res []string
	for _, item := range c.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		res = append(res, item.Category)
	}
	return res
}

// CategoryGroup: позиции одной категории в порядке каталога.
type CategoryGroup struct {
	Category string
	Items    []CatalogItem
}
