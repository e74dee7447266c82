package usecase

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
)

// CartSession хранит состояние одной сессии: запрос поиска, корзину и оформленный заказ.
// Не предназначена для конкурентного использования: в каждый момент у сессии один вызывающий.
type CartSession struct {
	catalog     *domain.Catalog
	lines       []domain.CartLine
	searchQuery string
	order       *domain.Order

	rnd *rand.Rand // nil: глобальный генератор
	now func() time.Time
}

// SessionOption настраивает CartSession.
type SessionOption func(*CartSession)

// WithRand задаёт генератор для оценки времени доставки.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *CartSession) {
		s.rnd = r
	}
}

// WithClock задаёт источник времени для PlacedAt.
func WithClock(now func() time.Time) SessionOption {
	return func(s *CartSession) {
		s.now = now
	}
}

func NewCartSession(catalog *domain.Catalog, opts ...SessionOption) *CartSession {
	s := &CartSession{
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetSearchQuery заменяет поисковый запрос. Корзину не трогает.
func (s *CartSession) SetSearchQuery(text string) {
	s.searchQuery = text
}

func (s *CartSession) SearchQuery() string {
	return s.searchQuery
}

// FilteredCatalog возвращает каталог, отфильтрованный текущим запросом и сгруппированный по категориям.
func (s *CartSession) FilteredCatalog() []domain.CategoryGroup {
	return FilterCatalog(s.catalog, s.searchQuery)
}

// AddToCart увеличивает количество существующей строки или добавляет новую строку в конец.
func (s *CartSession) AddToCart(item domain.CatalogItem) error {
	const op = "CartSession.AddToCart"

	if !s.catalog.Contains(item) {
		return e.Wrap(op, e.Wrap(item.Name, e.ErrInvalidItem))
	}

	for i := range s.lines {
		if s.lines[i].Item.Name == item.Name {
			s.lines[i].Quantity++
			return nil
		}
	}

	s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: 1})
	return nil
}

// IncrementQuantity увеличивает количество строки на 1. Верхней границы нет.
func (s *CartSession) IncrementQuantity(lineIndex int) error {
	const op = "CartSession.IncrementQuantity"

	if err := s.checkIndex(lineIndex); err != nil {
		return e.Wrap(op, err)
	}

	s.lines[lineIndex].Quantity++
	return nil
}

// DecrementQuantity уменьшает количество строки на 1, но не ниже 1. Строка никогда не удаляется.
func (s *CartSession) DecrementQuantity(lineIndex int) error {
	const op = "CartSession.DecrementQuantity"

	if err := s.checkIndex(lineIndex); err != nil {
		return e.Wrap(op, err)
	}

	if s.lines[lineIndex].Quantity > 1 {
		s.lines[lineIndex].Quantity--
	}
	return nil
}

// Lines возвращает копию строк корзины в порядке первого добавления.
func (s *CartSession) Lines() []domain.CartLine {
	res := make([]domain.CartLine, len(s.lines))
	copy(res, s.lines)
	return res
}

func (s *CartSession) CartTotalCents() int64 {
	return domain.TotalCents(s.lines)
}

func (s *CartSession) IsCartEmpty() bool {
	return len(s.lines) == 0
}

// PlaceOrder оформляет заказ. Первый успешный вызов фиксирует снимок строк и суммы
// и оценивает время доставки; последующие вызовы возвращают тот же снимок,
// даже если корзина после этого менялась.
func (s *CartSession) PlaceOrder() (*domain.Order, error) {
	const op = "CartSession.PlaceOrder"

	if s.order != nil {
		return s.order.Clone(), nil
	}

	if s.IsCartEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	s.order = domain.NewOrder(s.lines, s.estimateDeliveryMinutes(), s.now())
	return s.order.Clone(), nil
}

func (s *CartSession) OrderPlaced() bool {
	return s.order != nil
}

// Order возвращает снимок оформленного заказа, если он есть.
func (s *CartSession) Order() (*domain.Order, bool) {
	if s.order == nil {
		return nil, false
	}
	return s.order.Clone(), true
}

func (s *CartSession) FlowState() domain.FlowState {
	return domain.DeriveFlowState(s.IsCartEmpty(), s.OrderPlaced())
}

// ResetSession очищает корзину, заказ и поисковый запрос (выход из аккаунта).
func (s *CartSession) ResetSession() {
	s.lines = nil
	s.order = nil
	s.searchQuery = ""
}

func (s *CartSession) checkIndex(i int) error {
	if i < 0 || i >= len(s.lines) {
		return e.Wrap(fmt.Sprintf("index %d, lines %d", i, len(s.lines)), e.ErrIndexOutOfRange)
	}
	return nil
}

// estimateDeliveryMinutes выбирает время доставки равномерно из [MinDeliveryMinutes, MaxDeliveryMinutes).
func (s *CartSession) estimateDeliveryMinutes() int {
	const span = domain.MaxDeliveryMinutes - domain.MinDeliveryMinutes

	if s.rnd != nil {
		return domain.MinDeliveryMinutes + s.rnd.IntN(span)
	}
	return domain.MinDeliveryMinutes + rand.IntN(span)
}
