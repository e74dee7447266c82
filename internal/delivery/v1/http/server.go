package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run блокируется до остановки сервера. Штатная остановка через Stop не считается ошибкой.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
