package http

import (
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/money"
)

// Суммы отдаются и в центах, и строкой вида "$13.43".

type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
}

type LoginResponse struct {
	SessionID string `json:"session_id"`
}

type AddToCartRequest struct {
	Name string `json:"name" example:"Apple"`
}

type CatalogItemResponse struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Emoji      string `json:"emoji"`
	Category   string `json:"category"`
}

type CategoryGroupResponse struct {
	Category string                `json:"category"`
	Items    []CatalogItemResponse `json:"items"`
}

type CatalogResponse struct {
	Query  string                  `json:"query"`
	Groups []CategoryGroupResponse `json:"groups"`
}

type CartLineResponse struct {
	Index          int                 `json:"index"`
	Item           CatalogItemResponse `json:"item"`
	Quantity       int                 `json:"quantity"`
	LineTotalCents int64               `json:"line_total_cents"`
	LineTotal      string              `json:"line_total"`
}

type OrderLineResponse struct {
	Item           CatalogItemResponse `json:"item"`
	Quantity       int                 `json:"quantity"`
	LineTotalCents int64               `json:"line_total_cents"`
}

type OrderResponse struct {
	Lines                    []OrderLineResponse `json:"lines"`
	TotalCents               int64               `json:"total_cents"`
	Total                    string              `json:"total"`
	EstimatedDeliveryMinutes int                 `json:"estimated_delivery_minutes"`
	PlacedAt                 time.Time           `json:"placed_at"`
}

type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	TotalCents  int64              `json:"total_cents"`
	Total       string             `json:"total"`
	IsEmpty     bool               `json:"is_empty"`
	FlowState   string             `json:"flow_state" enums:"browsing,checkout,placed"`
	OrderPlaced bool               `json:"order_placed"`
	Order       *OrderResponse     `json:"order,omitempty"`
}

// MAPPERS

func toCatalogItemResponse(item domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Price:      money.FormatCents(item.PriceCents),
		Emoji:      item.Emoji,
		Category:   item.Category,
	}
}

func toCatalogResponse(res *usecase.CatalogRes) *CatalogResponse {
	groups := make([]CategoryGroupResponse, len(res.Groups))
	for i, g := range res.Groups {
		items := make([]CatalogItemResponse, len(g.Items))
		for j, item := range g.Items {
			items[j] = toCatalogItemResponse(item)
		}
		groups[i] = CategoryGroupResponse{Category: g.Category, Items: items}
	}

	return &CatalogResponse{Query: res.Query, Groups: groups}
}

func toOrderResponse(order *domain.Order) *OrderResponse {
	if order == nil {
		return nil
	}

	lines := make([]OrderLineResponse, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = OrderLineResponse{
			Item:           toCatalogItemResponse(l.Item),
			Quantity:       l.Quantity,
			LineTotalCents: l.TotalCents(),
		}
	}

	return &OrderResponse{
		Lines:                    lines,
		TotalCents:               order.TotalCents,
		Total:                    money.FormatCents(order.TotalCents),
		EstimatedDeliveryMinutes: order.EstimatedDeliveryMinutes,
		PlacedAt:                 order.PlacedAt,
	}
}

func toCartResponse(res *usecase.CartRes) *CartResponse {
	lines := make([]CartLineResponse, len(res.Lines))
	for i, l := range res.Lines {
		lines[i] = CartLineResponse{
			Index:          l.Index,
			Item:           toCatalogItemResponse(l.Item),
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotalCents,
			LineTotal:      money.FormatCents(l.LineTotalCents),
		}
	}

	return &CartResponse{
		Lines:       lines,
		TotalCents:  res.TotalCents,
		Total:       money.FormatCents(res.TotalCents),
		IsEmpty:     res.IsEmpty,
		FlowState:   string(res.FlowState),
		OrderPlaced: res.OrderPlaced,
		Order:       toOrderResponse(res.Order),
	}
}
