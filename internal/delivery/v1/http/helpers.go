package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	sessionHeader  = "X-Session-ID"
	maxRequestSize = 1 << 20
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidItem):
		return http.StatusBadRequest, e.ErrInvalidItem.Error()
	case errors.Is(err, e.ErrIndexOutOfRange):
		return http.StatusNotFound, e.ErrIndexOutOfRange.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrSessionHeaderRequired):
		return http.StatusUnauthorized, e.ErrSessionHeaderRequired.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusUnauthorized, e.ErrSessionNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionID извлекает идентификатор сессии из заголовка X-Session-ID.
func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrSessionHeaderRequired)
	}
	return id, nil
}

// lineIndex разбирает параметр пути {index}.
func lineIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap("index "+strconv.Quote(raw), e.ErrStatusBadRequest)
	}
	return idx, nil
}

// decodeJSON читает тело запроса в dst. Пустое тело допустимо, если allowEmpty.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}
