package usecase

import "context"

// OrderEventProducer публикует события об оформленных заказах (Kafka или RabbitMQ).
type OrderEventProducer interface {
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error
}
