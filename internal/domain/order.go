package domain

import "time"

// Границы оценки времени доставки в минутах: [MinDeliveryMinutes, MaxDeliveryMinutes).
const (
	MinDeliveryMinutes = 10
	MaxDeliveryMinutes = 60
)

// Order: снимок корзины на момент первого оформления заказа. Не хранится.
type Order struct {
	Lines                    []CartLine
	TotalCents               int64
	EstimatedDeliveryMinutes int
	PlacedAt                 time.Time
}

func NewOrder(lines []CartLine, deliveryMinutes int, placedAt time.Time) *Order {
	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)

	return &Order{
		Lines:                    snapshot,
		TotalCents:               TotalCents(snapshot),
		EstimatedDeliveryMinutes: deliveryMinutes,
		PlacedAt:                 placedAt,
	}
}

// Clone возвращает копию заказа, чтобы вызывающий код не мог изменить снимок.
func (o *Order) Clone() *Order {
	c := *o
	c.Lines = make([]CartLine, len(o.Lines))
	copy(c.Lines, o.Lines)
	return &c
}
