// Package money переводит денежные суммы между строковым представлением ("$13.43")
// и целым числом центов. Внутри приложения суммы хранятся только в центах.
package money

import (
	"strings"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "$"

	// maxPriceCents: верхняя граница цены одной позиции (1 млн долларов).
	maxPriceCents = 100_000_000
)

var hundred = decimal.NewFromInt(100)

// ParseCents converts a string like "$13.43", "10.4" or "7" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds maxPriceCents
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, CurrencySymbol)
	if s == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	if d.IsNegative() {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	// "13.430" допустимо: значащих знаков после запятой не больше двух
	if !d.Equal(d.Round(2)) {
		return 0, e.Wrap(s, e.ErrPricePrecision)
	}

	cents := d.Mul(hundred).Round(0)
	if cents.GreaterThan(decimal.NewFromInt(maxPriceCents)) {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	return cents.IntPart(), nil
}

// FormatCents форматирует сумму в центах для отображения: 1343 -> "$13.43".
func FormatCents(cents int64) string {
	return CurrencySymbol + decimal.New(cents, -2).StringFixed(2)
}
