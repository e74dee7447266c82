package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

type ShopHandler struct {
	shopUsecase usecase.ShopUC
	logger      logger.Logger
}

func NewShopHandler(shopUsecase usecase.ShopUC, logger logger.Logger) *ShopHandler {
	return &ShopHandler{shopUsecase: shopUsecase, logger: logger}
}

// login
//
//	@Summary		Вход
//	@Description	Фиктивный вход: принимает любые данные и создаёт пустую сессию
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	false	"Учётные данные"
//	@Success		201		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse	"Некорректное тело запроса"
//	@Router			/login [post]
func (h *ShopHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		h.fail(w, err)
		return
	}

	res, err := h.shopUsecase.Login(r.Context(), &usecase.LoginReq{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, LoginResponse{SessionID: res.SessionID})
}

// logout
//
//	@Summary		Выход
//	@Description	Сбрасывает корзину, заказ и поиск и закрывает сессию
//	@Tags			session
//	@Param			X-Session-ID	header	string	true	"ID сессии"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/logout [post]
func (h *ShopHandler) logout(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := h.shopUsecase.Logout(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// catalog
//
//	@Summary		Каталог
//	@Description	Если передан q, заменяет поисковый запрос сессии. Возвращает отфильтрованный каталог, сгруппированный по категориям
//	@Tags			catalog
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"ID сессии"
//	@Param			q				query		string	false	"Поисковый запрос"
//	@Success		200				{object}	CatalogResponse
//	@Failure		401				{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/catalog [get]
func (h *ShopHandler) catalog(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	if query := r.URL.Query(); query.Has("q") {
		if err := h.shopUsecase.SetSearchQuery(r.Context(), id, query.Get("q")); err != nil {
			h.fail(w, err)
			return
		}
	}

	res, err := h.shopUsecase.Catalog(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogResponse(res))
}

// cart
//
//	@Summary		Корзина
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"ID сессии"
//	@Success		200				{object}	CartResponse
//	@Failure		401				{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/cart [get]
func (h *ShopHandler) cart(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	res, err := h.shopUsecase.Cart(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// addToCart
//
//	@Summary		Добавить в корзину
//	@Description	Добавляет позицию каталога по имени. Повторное добавление увеличивает количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				true	"ID сессии"
//	@Param			request			body		AddToCartRequest	true	"Позиция"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse	"Позиции нет в каталоге"
//	@Failure		401				{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/cart/items [post]
func (h *ShopHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var req AddToCartRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.fail(w, err)
		return
	}

	res, err := h.shopUsecase.AddToCart(r.Context(), id, req.Name)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// incrementQuantity
//
//	@Summary		Увеличить количество
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"ID сессии"
//	@Param			index			path		int		true	"Индекс строки корзины"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse	"Некорректный индекс"
//	@Failure		404				{object}	ErrorResponse	"Строки нет"
//	@Router			/cart/lines/{index}/increment [post]
func (h *ShopHandler) incrementQuantity(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.shopUsecase.IncrementQuantity)
}

// decrementQuantity
//
//	@Summary		Уменьшить количество
//	@Description	Количество не опускается ниже 1, строка не удаляется
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"ID сессии"
//	@Param			index			path		int		true	"Индекс строки корзины"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse	"Некорректный индекс"
//	@Failure		404				{object}	ErrorResponse	"Строки нет"
//	@Router			/cart/lines/{index}/decrement [post]
func (h *ShopHandler) decrementQuantity(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.shopUsecase.DecrementQuantity)
}

// placeOrder
//
//	@Summary		Оформить заказ
//	@Description	Первый успешный вызов фиксирует заказ, повторные возвращают тот же снимок
//	@Tags			orders
//	@Produce		json
//	@Param			X-Session-ID	header		string	true	"ID сессии"
//	@Success		201				{object}	OrderResponse
//	@Failure		409				{object}	ErrorResponse	"Корзина пуста"
//	@Failure		401				{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/orders [post]
func (h *ShopHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	order, err := h.shopUsecase.PlaceOrder(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// resetSession
//
//	@Summary		Сброс сессии
//	@Description	Очищает корзину, заказ и поисковый запрос, сессия остаётся активной
//	@Tags			session
//	@Param			X-Session-ID	header	string	true	"ID сессии"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse	"Сессия не найдена"
//	@Router			/session/reset [post]
func (h *ShopHandler) resetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := h.shopUsecase.ResetSession(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ShopHandler) changeQuantity(w http.ResponseWriter, r *http.Request,
	change func(ctx context.Context, sessionID string, lineIndex int) (*usecase.CartRes, error)) {
	id, err := sessionID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	idx, err := lineIndex(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	res, err := change(r.Context(), id, idx)
	if err != nil {
		h.fail(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// fail логирует ошибку с уровнем по коду ответа и пишет её клиенту.
func (h *ShopHandler) fail(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		h.logger.Errorf(err, "%d %s", code, e.ErrInternalServerError.Error())
	} else {
		h.logger.Warnf("%d %s: %s", code, msg, err.Error())
	}

	WriteError(w, err)
}
