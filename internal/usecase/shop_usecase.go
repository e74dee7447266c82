package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/google/uuid"
)

const (
	cacheWriteTimeout = 500 * time.Millisecond
	publishTimeout    = 5 * time.Second
)

// ShopUseCase раздаёт намерения пользователя корзинам сессий.
// searchCache и producer могут быть nil: тогда кэш и события отключены.
type ShopUseCase struct {
	catalog     *domain.Catalog
	sessionRepo SessionRepository
	searchCache SearchCacheRepository
	producer    OrderEventProducer
	sessionOpts []SessionOption
	logger      logger.Logger

	bg sync.WaitGroup
}

func NewShopUC(
	catalog *domain.Catalog,
	sessionRepo SessionRepository,
	searchCache SearchCacheRepository,
	producer OrderEventProducer,
	logger logger.Logger,
	sessionOpts ...SessionOption,
) *ShopUseCase {
	return &ShopUseCase{
		catalog:     catalog,
		sessionRepo: sessionRepo,
		searchCache: searchCache,
		producer:    producer,
		sessionOpts: sessionOpts,
		logger:      logger,
	}
}

// Login создаёт пустую сессию. Учётные данные не проверяются.
func (u *ShopUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "ShopUseCase.Login"

	session, err := u.sessionRepo.Create(ctx, NewSession(req.Email, NewCartSession(u.catalog, u.sessionOpts...), time.Now()))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Debugf("Session created. session_id: %s", session.ID)
	return NewLoginRes(session.ID), nil
}

// Logout сбрасывает состояние сессии и удаляет её под блокировкой сессии:
// намерения, ожидающие блокировку, после неё получают ErrSessionNotFound.
func (u *ShopUseCase) Logout(ctx context.Context, sessionID string) error {
	const op = "ShopUseCase.Logout"

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = session.withCart(func(c *CartSession) error {
		if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
			return err
		}
		c.ResetSession()
		session.closed = true
		return nil
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	u.logger.Debugf("Session closed. session_id: %s", sessionID)
	return nil
}

func (u *ShopUseCase) SetSearchQuery(ctx context.Context, sessionID string, query string) error {
	const op = "ShopUseCase.SetSearchQuery"

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return e.Wrap(op, err)
	}

	return session.withCart(func(c *CartSession) error {
		c.SetSearchQuery(query)
		return nil
	})
}

// Catalog возвращает каталог, отфильтрованный текущим запросом сессии.
// Результат берётся из кэша, при промахе считается заново и кэшируется в фоне.
// Закэшированный результат принимается, только если все его позиции есть в загруженном каталоге.
func (u *ShopUseCase) Catalog(ctx context.Context, sessionID string) (*CatalogRes, error) {
	const op = "ShopUseCase.Catalog"

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var query string
	err = session.withCart(func(c *CartSession) error {
		query = c.SearchQuery()
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	key := u.searchCacheKey(query)
	if u.searchCache != nil {
		groups, ok, err := u.searchCache.GetSearch(ctx, key)
		if err != nil {
			u.logger.Warnf("Search cache read failed: %v", e.Wrap(op, err))
		}
		if ok && u.groupsInCatalog(groups) {
			return NewCatalogRes(query, groups), nil
		}
		if ok {
			u.logger.Warnf("Cached search result does not match catalog, recomputing. key: %s", key)
		}
	}

	groups := FilterCatalog(u.catalog, query)

	if u.searchCache != nil {
		u.runBackground(cacheWriteTimeout, func(bgCtx context.Context) {
			if err := u.searchCache.SetSearch(bgCtx, key, groups); err != nil {
				u.logger.Warnf("Failed to cache search result in background: %v", e.Wrap(op, err))
			}
		})
	}

	return NewCatalogRes(query, groups), nil
}

// AddToCart добавляет позицию каталога по имени.
func (u *ShopUseCase) AddToCart(ctx context.Context, sessionID string, itemName string) (*CartRes, error) {
	const op = "ShopUseCase.AddToCart"

	item, ok := u.catalog.Lookup(itemName)
	if !ok {
		return nil, e.Wrap(op, e.Wrap(itemName, e.ErrInvalidItem))
	}

	return u.mutateCart(ctx, op, sessionID, func(c *CartSession) error {
		return c.AddToCart(item)
	})
}

func (u *ShopUseCase) IncrementQuantity(ctx context.Context, sessionID string, lineIndex int) (*CartRes, error) {
	const op = "ShopUseCase.IncrementQuantity"

	return u.mutateCart(ctx, op, sessionID, func(c *CartSession) error {
		return c.IncrementQuantity(lineIndex)
	})
}

func (u *ShopUseCase) DecrementQuantity(ctx context.Context, sessionID string, lineIndex int) (*CartRes, error) {
	const op = "ShopUseCase.DecrementQuantity"

	return u.mutateCart(ctx, op, sessionID, func(c *CartSession) error {
		return c.DecrementQuantity(lineIndex)
	})
}

func (u *ShopUseCase) Cart(ctx context.Context, sessionID string) (*CartRes, error) {
	const op = "ShopUseCase.Cart"

	return u.mutateCart(ctx, op, sessionID, func(*CartSession) error {
		return nil
	})
}

// PlaceOrder оформляет заказ. Событие order_placed публикуется только при первом успешном вызове;
// ошибка публикации не влияет на результат.
func (u *ShopUseCase) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	const op = "ShopUseCase.PlaceOrder"

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		order    *domain.Order
		firstRun bool
	)
	err = session.withCart(func(c *CartSession) error {
		firstRun = !c.OrderPlaced()

		var err error
		order, err = c.PlaceOrder()
		return err
	})
	if err != nil {
		u.logger.Debugf("Order rejected. session_id: %s, reason: %v", sessionID, err)
		return nil, e.Wrap(op, err)
	}

	if firstRun {
		u.logger.Infof("Order placed. session_id: %s, total_cents: %d, delivery_minutes: %d",
			sessionID, order.TotalCents, order.EstimatedDeliveryMinutes)
		u.publishOrderPlaced(sessionID, order)
	}

	return order, nil
}

// ResetSession очищает корзину, заказ и запрос, но оставляет сессию активной.
func (u *ShopUseCase) ResetSession(ctx context.Context, sessionID string) error {
	const op = "ShopUseCase.ResetSession"

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return e.Wrap(op, err)
	}

	return session.withCart(func(c *CartSession) error {
		c.ResetSession()
		return nil
	})
}

// Wait дожидается фоновых задач (запись в кэш, публикация событий).
func (u *ShopUseCase) Wait() {
	u.bg.Wait()
}

// mutateCart применяет fn к корзине сессии и возвращает модель чтения корзины.
func (u *ShopUseCase) mutateCart(ctx context.Context, op string, sessionID string, fn func(c *CartSession) error) (*CartRes, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var res *CartRes
	err = session.withCart(func(c *CartSession) error {
		if err := fn(c); err != nil {
			return err
		}
		res = NewCartRes(c)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// searchCacheKey включает отпечаток каталога: записи другого каталога
// (прошлый деплой, другой инстанс с общим Redis) не читаются.
func (u *ShopUseCase) searchCacheKey(query string) string {
	return u.catalog.Fingerprint() + ":" + strings.ToLower(query)
}

func (u *ShopUseCase) groupsInCatalog(groups []domain.CategoryGroup) bool {
	for _, g := range groups {
		for _, item := range g.Items {
			if item.Category != g.Category || !u.catalog.Contains(item) {
				return false
			}
		}
	}
	return true
}

func (u *ShopUseCase) publishOrderPlaced(sessionID string, order *domain.Order) {
	const op = "ShopUseCase.publishOrderPlaced"

	if u.producer == nil {
		return
	}

	event := NewOrderPlacedEvent(uuid.NewString(), sessionID, order)
	u.runBackground(publishTimeout, func(bgCtx context.Context) {
		if err := u.producer.PublishOrderPlaced(bgCtx, event); err != nil {
			u.logger.Errorf(e.Wrap(op, err), "Failed to publish order_placed. session_id: %s, event_id: %s",
				sessionID, event.EventID)
		}
	})
}

func (u *ShopUseCase) runBackground(timeout time.Duration, fn func(ctx context.Context)) {
	u.bg.Add(1)
	go func() {
		defer u.bg.Done()

		bgCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		fn(bgCtx)
	}()
}
