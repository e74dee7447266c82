package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrStatusBadRequest), http.StatusBadRequest},
		{e.Wrap("op", e.ErrInvalidItem), http.StatusBadRequest},
		{e.Wrap("op", e.ErrIndexOutOfRange), http.StatusNotFound},
		{e.Wrap("op", e.ErrEmptyCart), http.StatusConflict},
		{e.Wrap("op", e.ErrSessionNotFound), http.StatusUnauthorized},
		{e.ErrSessionHeaderRequired, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "%v", tt.err)
		assert.NotEmpty(t, msg)
	}

	_, msg := ToHTTPResponse(errors.New("secret detail"))
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
