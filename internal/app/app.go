package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/heartmarshall/wadirect-backend/internal/adapter/postgres"
	authmethodrepo "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres/authmethod"
	contactrepo "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres/contact"
	tokenrepo "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/wadirect-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/wadirect-backend/internal/auth"
	"github.com/heartmarshall/wadirect-backend/internal/config"
	"github.com/heartmarshall/wadirect-backend/internal/history"
	authservice "github.com/heartmarshall/wadirect-backend/internal/service/auth"
	contactservice "github.com/heartmarshall/wadirect-backend/internal/service/contact"
	"github.com/heartmarshall/wadirect-backend/internal/transport/middleware"
	"github.com/heartmarshall/wadirect-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	contacts := contactrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	oauthVerifier := google.NewVerifier(
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.Auth.GoogleRedirectURI,
		logger,
	)

	authSvc := authservice.NewService(logger, users, tokens, authMethods, txManager, oauthVerifier, jwtManager, cfg.Auth)
	contactSvc := contactservice.NewService(logger, contacts, history.NewEngine())

	mux := rest.NewRouter(
		rest.NewAuthHandler(authSvc, logger),
		rest.NewContactHandler(contactSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
