package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/role-membership-service/internal/handler"
	"go.uber.org/zap"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *zap.Logger
}

func NewServer(h *handler.Handler, addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:    addr,
			Handler: RequestLogging(logger)(mux),
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
