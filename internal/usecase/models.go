package usecase

import (
	"sync"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
)

// SESSIONS

// Session связывает ID сессии с её корзиной. Мьютекс сериализует обращения к CartSession.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time

	mu     sync.Mutex
	cart   *CartSession
	closed bool // сессия удалена через Logout
}

// withCart выполняет fn под блокировкой сессии. Для закрытой сессии возвращает ErrSessionNotFound,
// даже если вызывающий получил её из репозитория до Logout.
func (s *Session) withCart(fn func(c *CartSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return e.Wrap(s.ID, e.ErrSessionNotFound)
	}
	return fn(s.cart)
}

// SHOP USECASE

// LoginReq: данные формы входа. Вход фиктивный: принимаются любые значения.
type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	SessionID string
}

// CatalogRes: отфильтрованный каталог для текущего запроса сессии.
type CatalogRes struct {
	Query  string
	Groups []domain.CategoryGroup
}

// CartLineInfo: строка корзины с индексом и суммой по строке.
type CartLineInfo struct {
	Index          int
	Item           domain.CatalogItem
	Quantity       int
	LineTotalCents int64
}

// CartRes: модель чтения корзины.
type CartRes struct {
	Lines       []CartLineInfo
	TotalCents  int64
	IsEmpty     bool
	FlowState   domain.FlowState
	OrderPlaced bool
	Order       *domain.Order
}

// INFRASTRUCTURE

// OrderPlacedEvent публикуется один раз на заказ, при первом успешном оформлении.
type OrderPlacedEvent struct {
	EventID                  string
	SessionID                string
	Lines                    []OrderLine
	TotalCents               int64
	EstimatedDeliveryMinutes int
	PlacedAt                 time.Time
}

type OrderLine struct {
	Name           string
	Category       string
	PriceCents     int64
	Quantity       int
	LineTotalCents int64
}

// MAPPERS

func NewSession(email string, cart *CartSession, createdAt time.Time) *Session {
	return &Session{
		Email:     email,
		CreatedAt: createdAt,
		cart:      cart,
	}
}

func NewLoginRes(sessionID string) *LoginRes {
	return &LoginRes{SessionID: sessionID}
}

func NewCatalogRes(query string, groups []domain.CategoryGroup) *CatalogRes {
	return &CatalogRes{
		Query:  query,
		Groups: groups,
	}
}

func NewCartRes(c *CartSession) *CartRes {
	lines := c.Lines()
	infos := make([]CartLineInfo, len(lines))
	for i, line := range lines {
		infos[i] = CartLineInfo{
			Index:          i,
			Item:           line.Item,
			Quantity:       line.Quantity,
			LineTotalCents: line.TotalCents(),
		}
	}

	order, _ := c.Order()

	return &CartRes{
		Lines:       infos,
		TotalCents:  c.CartTotalCents(),
		IsEmpty:     c.IsCartEmpty(),
		FlowState:   c.FlowState(),
		OrderPlaced: c.OrderPlaced(),
		Order:       order,
	}
}

func NewOrderPlacedEvent(eventID string, sessionID string, order *domain.Order) *OrderPlacedEvent {
	lines := make([]OrderLine, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLine{
			Name:           line.Item.Name,
			Category:       line.Item.Category,
			PriceCents:     line.Item.PriceCents,
			Quantity:       line.Quantity,
			LineTotalCents: line.TotalCents(),
		}
	}

	return &OrderPlacedEvent{
		EventID:                  eventID,
		SessionID:                sessionID,
		Lines:                    lines,
		TotalCents:               order.TotalCents,
		EstimatedDeliveryMinutes: order.EstimatedDeliveryMinutes,
		PlacedAt:                 order.PlacedAt,
	}
}
