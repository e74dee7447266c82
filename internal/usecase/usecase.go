package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

type ShopUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, sessionID string) error
	SetSearchQuery(ctx context.Context, sessionID string, query string) error
	Catalog(ctx context.Context, sessionID string) (*CatalogRes, error)
	AddToCart(ctx context.Context, sessionID string, itemName string) (*CartRes, error)
	IncrementQuantity(ctx context.Context, sessionID string, lineIndex int) (*CartRes, error)
	DecrementQuantity(ctx context.Context, sessionID string, lineIndex int) (*CartRes, error)
	Cart(ctx context.Context, sessionID string) (*CartRes, error)
	PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error)
	ResetSession(ctx context.Context, sessionID string) error
}
