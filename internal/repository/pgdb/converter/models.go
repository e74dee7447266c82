package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	Price      int64      `db:"price"`
	Emoji      string     `db:"emoji"`
	CategoryID int64      `db:"category_id"`
	Position   int        `db:"position"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// CatalogRowModel: строка выборки каталога: продукт вместе с именем категории.
type CatalogRowModel struct {
	Name         string `db:"name"`
	Price        int64  `db:"price"`
	Emoji        string `db:"emoji"`
	CategoryName string `db:"category_name"`
}
