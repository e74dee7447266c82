package http

import (
	_ "github.com/DRSN-tech/food-delivery/docs" // Регистрация swagger-спецификации
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(shopUC usecase.ShopUC) {
	r.router.Use(middleware.RequestID, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		shopHandler := NewShopHandler(shopUC, r.logger)
		registerSessionRoutes(v1, shopHandler)
		registerCatalogRoutes(v1, shopHandler)
		registerCartRoutes(v1, shopHandler)
		registerOrderRoutes(v1, shopHandler)
	})
}

func registerSessionRoutes(router chi.Router, h *ShopHandler) {
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Post("/session/reset", h.resetSession)
}

func registerCatalogRoutes(router chi.Router, h *ShopHandler) {
	router.Get("/catalog", h.catalog)
}

func registerCartRoutes(router chi.Router, h *ShopHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.cart)
		cart.Post("/items", h.addToCart)
		cart.Post("/lines/{index}/increment", h.incrementQuantity)
		cart.Post("/lines/{index}/decrement", h.decrementQuantity)
	})
}

func registerOrderRoutes(router chi.Router, h *ShopHandler) {
	router.Post("/orders", h.placeOrder)
}
