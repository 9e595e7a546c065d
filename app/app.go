// File: app/app.go
package app

import (
	"context"
	"errors"
	"expense-tracker/config"
	"expense-tracker/handler"
	"expense-tracker/logger"
	"expense-tracker/repository"
	"expense-tracker/router"
	"expense-tracker/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// App bundles the wired router with the store it was built on.
type App struct {
	Router  http.Handler
	Service *service.TransactionService
	close   func() error
}

// NewApp wires repository, service, handlers and router around an existing store.
func NewApp(repo repository.ITransactionRepository) *App {
	transactionService := service.NewTransactionService(repo)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	pageHandler := handler.NewPageHandler(transactionService)

	return &App{
		Router:  router.NewRouter(transactionHandler, pageHandler),
		Service: transactionService,
		close:   func() error { return nil },
	}
}

// New opens the configured store and wires the application on top of it.
func New(cfg *config.Config) (*App, error) {
	repo, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	a := NewApp(repo)
	a.close = closeStore
	return a, nil
}

// Close releases the store connection.
func (a *App) Close() error {
	return a.close()
}

func Run() {
	logger.Init()
	logger.Log.Info("Logger initialized")

	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := &config.AppConfig
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Log.Fatalf("Invalid logging configuration: %v", err)
	}
	logger.Log.WithField("backend", cfg.Store.Backend).Info("Configuration loaded successfully")

	application, err := New(cfg)
	if err != nil {
		logger.Log.Fatalf("Error opening the transaction store: %v", err)
	}
	defer application.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      application.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorf("Server stopped with error: %v", err)
		application.Close()
		os.Exit(1)
	}

	logger.Log.Info("Server exited properly")
}
