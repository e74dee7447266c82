package e

import "fmt"

var (
	// Ошибки корзины
	ErrInvalidItem     = fmt.Errorf("item is not in the catalog")
	ErrIndexOutOfRange = fmt.Errorf("cart line index out of range")
	ErrEmptyCart       = fmt.Errorf("cart is empty")

	// Ошибки сессий
	ErrSessionNotFound = fmt.Errorf("session not found")

	// Ошибки каталога
	ErrEmptyCatalog     = fmt.Errorf("catalog is empty")
	ErrItemNameRequired = fmt.Errorf("item name is required")
	ErrDuplicateItem    = fmt.Errorf("duplicate catalog item")
	ErrNegativePrice    = fmt.Errorf("price must not be negative")
	ErrCategoryRequired = fmt.Errorf("item category is required")

	// Ошибки цен
	ErrInvalidPrice   = fmt.Errorf("invalid price")
	ErrPricePrecision = fmt.Errorf("price must have at most 2 decimal places")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable  = fmt.Errorf("incorrect environment variable")
	ErrUnknownCatalogSource  = fmt.Errorf("unknown catalog source")
	ErrUnknownEventsBroker   = fmt.Errorf("unknown events broker")
	ErrTransactionNotFound   = fmt.Errorf("transaction not found")
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrInternalServerError   = fmt.Errorf("internal server error")
	ErrSessionHeaderRequired = fmt.Errorf("X-Session-ID header is required")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
