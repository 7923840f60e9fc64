// Package web hosts the HTTP server for the Bistro API.
package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bistroworks/bistro-server/web/auth"
	"github.com/bistroworks/bistro-server/web/handlers"
	"github.com/bistroworks/bistro-server/web/middleware"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the http.Server and the route table.
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// NewServer builds the router, applies the global middleware chain, and
// returns a server ready to Start.
func NewServer(addr string, group *handlers.HandlerGroup, am *auth.AuthMiddleware, logger *log.Logger) *Server {
	router := mux.NewRouter()
	group.RegisterRoutes(router, am)

	handler := middleware.Chain(router,
		middleware.CORS,
		middleware.RequestID,
		middleware.RequestLogger(logger),
	)

	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		logger: logger,
	}
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = s.srv.Shutdown(shutdownCtx)
	}()

	s.logger.Printf("bistro server listening on %s", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
