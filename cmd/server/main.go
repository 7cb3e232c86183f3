package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kofiasare/ghanalingo/internal/config"
	"github.com/kofiasare/ghanalingo/internal/db"
	"github.com/kofiasare/ghanalingo/internal/events"
	"github.com/kofiasare/ghanalingo/internal/httpserver"
	"github.com/kofiasare/ghanalingo/internal/logging"
	"github.com/kofiasare/ghanalingo/internal/repo"
	"github.com/kofiasare/ghanalingo/internal/service"
	"github.com/kofiasare/ghanalingo/internal/session"
	"github.com/kofiasare/ghanalingo/internal/tokens"
)

// portAttempts bounds the increment-and-retry loop when the configured
// port is already taken.
const portAttempts = 10

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	store, err := db.Open(context.Background(), cfg)
	if err != nil {
		// no backing engine: nothing to degrade to
		logger.Error("failed to initialize any database", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "engine", store.Engine())

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress)
	}

	users := &repo.UserRepo{Store: store}
	languages := &repo.LanguageRepo{Store: store}
	sessions := session.NewStore(cfg.SessionSecret, tokens.TTL)

	authSvc := &service.AuthService{
		Users:     users,
		Sessions:  sessions,
		Producer:  producer,
		JWTSecret: cfg.JWTSecret,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: authSvc},
		LanguageHandler: &httpserver.LanguageHTTP{Repo: languages},
		StaticDir:       "public",
	})

	srv := &http.Server{
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, port, err := listenWithRetry(cfg.Port, logger.Warn)
	if err != nil {
		logger.Error("could not bind a port", "error", err)
		os.Exit(1)
	}
	logger.Info("server running", "addr", fmt.Sprintf("http://localhost:%d", port))

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Error("db close error", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// listenWithRetry binds the first free port starting at the configured one.
func listenWithRetry(port int, warn func(msg string, args ...any)) (net.Listener, int, error) {
	for i := 0; i < portAttempts; i++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, err
		}
		warn("port already in use, trying the next one", "port", port)
		port++
	}
	return nil, 0, fmt.Errorf("no free port after %d attempts", portAttempts)
}
