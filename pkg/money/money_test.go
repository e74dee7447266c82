package money

import (
	"testing"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
	}{
		{"$13.43", 1343},
		{"$10.4", 1040},
		{"$2.4", 240},
		{"17.66", 1766},
		{"7", 700},
		{" $0.01 ", 1},
		{"$0", 0},
		{"$13.430", 1343},
		{"$2.4000", 240},
		{"$5.00", 500},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCents(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCents_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantErr error
	}{
		{"", e.ErrInvalidPrice},
		{"$", e.ErrInvalidPrice},
		{"abc", e.ErrInvalidPrice},
		{"-1.00", e.ErrInvalidPrice},
		{"$1.234", e.ErrPricePrecision},
		{"$1.2340", e.ErrPricePrecision},
		{"$0.001", e.ErrPricePrecision},
		{"$1000000.01", e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCents(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$13.43", FormatCents(1343))
	assert.Equal(t, "$10.40", FormatCents(1040))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$44.52", FormatCents(4452))
}
