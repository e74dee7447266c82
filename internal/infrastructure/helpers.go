package infrastructure

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/money"
)

// EventTypeOrderPlaced: тип события об оформленном заказе.
const EventTypeOrderPlaced = "order_placed"

// OrderPlacedPayload: JSON-представление события order_placed, общее для всех брокеров.
type OrderPlacedPayload struct {
	EventID                  string             `json:"event_id"`
	EventType                string             `json:"event_type"`
	SessionID                string             `json:"session_id"`
	Lines                    []OrderLinePayload `json:"lines"`
	TotalCents               int64              `json:"total_cents"`
	Total                    string             `json:"total"`
	EstimatedDeliveryMinutes int                `json:"estimated_delivery_minutes"`
	PlacedAt                 time.Time          `json:"placed_at"`
}

type OrderLinePayload struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	PriceCents     int64  `json:"price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// MarshalOrderPlaced сериализует событие в JSON.
func MarshalOrderPlaced(event *usecase.OrderPlacedEvent) ([]byte, error) {
	lines := make([]OrderLinePayload, len(event.Lines))
	for i, l := range event.Lines {
		lines[i] = OrderLinePayload{
			Name:           l.Name,
			Category:       l.Category,
			PriceCents:     l.PriceCents,
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotalCents,
		}
	}

	return json.Marshal(OrderPlacedPayload{
		EventID:                  event.EventID,
		EventType:                EventTypeOrderPlaced,
		SessionID:                event.SessionID,
		Lines:                    lines,
		TotalCents:               event.TotalCents,
		Total:                    money.FormatCents(event.TotalCents),
		EstimatedDeliveryMinutes: event.EstimatedDeliveryMinutes,
		PlacedAt:                 event.PlacedAt.UTC(),
	})
}

// IsRetryableError распознаёт сетевые ошибки, которые имеет смысл повторить.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
		"channel/connection is not open",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
