package domain

import "time"

// Product описывает позицию каталога в том виде, в котором она хранится в Postgres.
type Product struct {
	ID         int64
	Name       string
	Price      int64 // Цена хранится в центах
	Emoji      string
	CategoryID int64
	Position   int // порядок позиции в каталоге
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(name string, price int64, emoji string, categoryID int64, position int) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		Emoji:      emoji,
		CategoryID: categoryID,
		Position:   position,
	}
}
