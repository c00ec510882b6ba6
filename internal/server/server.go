package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/config"
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	http            *http.Server
	dbPool          *pgxpool.Pool
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewServer loads configuration, connects and migrates the database and wires the router.
func NewServer(ctx context.Context) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, bootstrap.BuildDependencies(dbPool, lgr), lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return newServer(cfg, router, dbPool, lgr), nil
}

func newServer(cfg *config.Config, handler http.Handler, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		dbPool:          dbPool,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          lgr.With().Str("component", "http").Logger(),
	}
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or the listener fails,
// then shuts down.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("Listening")
		listenErr <- s.http.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closePool()
			return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Stop requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests within the configured timeout, then closes the pool.
// The pool is closed even when draining fails.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Requests still in flight at shutdown")
		err = fmt.Errorf("http shutdown: %w", err)
	}

	s.closePool()
	s.logger.Info().Msg("Stopped")
	return err
}

func (s *Server) closePool() {
	if s.dbPool == nil {
		return
	}
	s.dbPool.Close()
	s.dbPool = nil
}
