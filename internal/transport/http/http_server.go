package httpt

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"paybox/internal/config"
	"paybox/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type HTTPServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	log             logger.Logger
}

func NewHTTPServer(
	handler *PaymentHandler,
	cfg *config.HTTP,
	log logger.Logger,
) (*HTTPServer, error) {
	if handler == nil {
		return nil, errors.New("transport.http.NewHTTPServer: nil handler")
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           handler.Engine(),
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             log,
	}, nil
}

// Start serves until ctx is canceled, then drains in-flight requests.
func (s *HTTPServer) Start(ctx context.Context) error {
	const op = "transport.http.HTTPServer.Start"

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		s.log.Infow("starting HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("HTTP server failed", "error", err)
			return fmt.Errorf("%s: listen and serve: %w", op, err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		s.log.Infow("stopping HTTP server", "timeout", s.shutdownTimeout.String())
		return s.Stop(context.WithoutCancel(egCtx))
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.log.Errorw("HTTP server forced shutdown", "error", err)
		return fmt.Errorf("transport.http.HTTPServer.Stop: %w", err)
	}
	s.log.Infow("HTTP server stopped gracefully")
	return nil
}
