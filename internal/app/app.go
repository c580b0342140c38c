// Package app is the composition root: it assembles the storage manager and
// the REST server from configuration and runs them until shutdown.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/internal/managers"
	"github.com/chrissnell/oceandiags/internal/server"
	"github.com/chrissnell/oceandiags/pkg/config"
	"github.com/chrissnell/oceandiags/pkg/derived"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply any physical-constant overrides before anything computes
	if err := a.applyConstants(); err != nil {
		return err
	}

	// Initialize the storage manager
	storageManager, err := managers.NewStorageManager(ctx, &wg, a.configProvider)
	if err != nil {
		return err
	}

	// Initialize the REST server
	ctrl, err := server.NewController(ctx, &wg, a.configProvider, storageManager.ResultDistributor, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// applyConstants pushes the configured physical-constant overrides into
// the compute packages
func (a *App) applyConstants() error {
	constants, err := a.configProvider.GetConstants()
	if err != nil {
		return fmt.Errorf("could not load constants configuration: %w", err)
	}
	if len(constants) == 0 {
		return nil
	}

	overrides := make(map[string]derived.Constant, len(constants))
	for name, c := range constants {
		overrides[name] = derived.Constant{Value: c.Value, Units: c.Units}
	}
	if err := derived.ApplyConstants(overrides); err != nil {
		return fmt.Errorf("invalid constants configuration: %w", err)
	}
	log.Infof("applied %d physical-constant overrides", len(overrides))
	return nil
}
