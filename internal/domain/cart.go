package domain

// CartLine: позиция корзины. Quantity всегда >= 1.
type CartLine struct {
	Item     CatalogItem
	Quantity int
}

// TotalCents возвращает стоимость строки: цена * количество.
func (l CartLine) TotalCents() int64 {
	return l.Item.PriceCents * int64(l.Quantity)
}

// TotalCents суммирует стоимость строк.
func TotalCents(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}
