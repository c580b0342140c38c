// Package managers wires configured subsystems together and owns their
// lifecycles.
package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/chrissnell/oceandiags/internal/storage"
	"github.com/chrissnell/oceandiags/internal/storage/timescaledb"
	"github.com/chrissnell/oceandiags/pkg/config"
)

// StorageManager holds our active storage backends
type StorageManager struct {
	Engines           []StorageEngine
	ResultDistributor chan storage.Result
}

// StorageEngine holds a backend storage engine's interface as well as
// a channel for passing results to the engine
type StorageEngine struct {
	Engine storage.StorageEngineInterface
	C      chan<- storage.Result
}

// NewStorageManager creates a StorageManager object, populated with all configured StorageEngines
func NewStorageManager(ctx context.Context, wg *sync.WaitGroup, provider config.ConfigProvider) (*StorageManager, error) {
	s := StorageManager{}

	// Initialize our channel for passing results to the distributor
	s.ResultDistributor = make(chan storage.Result, 20)

	// Start our result distributor to fan received results out to storage
	// backends
	go s.startResultDistributor(ctx, wg)

	// Check the configuration for supported storage backends and enable
	// them if found
	storageConfig, err := provider.GetStorageConfig()
	if err != nil {
		return &s, fmt.Errorf("could not load storage configuration: %v", err)
	}

	if storageConfig.TimescaleDB != nil && storageConfig.TimescaleDB.ConnectionString != "" {
		if err := s.AddEngine(ctx, wg, "timescaledb", storageConfig); err != nil {
			return &s, fmt.Errorf("could not add TimescaleDB storage backend: %v", err)
		}
	}

	return &s, nil
}

// GetResultDistributor returns the result distributor channel
func (s *StorageManager) GetResultDistributor() chan storage.Result {
	return s.ResultDistributor
}

// AddEngine adds a new StorageEngine of name engineName to our StorageManager
func (s *StorageManager) AddEngine(ctx context.Context, wg *sync.WaitGroup, engineName string, c *config.StorageData) error {
	var err error

	switch engineName {
	case "timescaledb":
		se := StorageEngine{}
		se.Engine, err = timescaledb.New(ctx, c.TimescaleDB.ConnectionString)
		if err != nil {
			return err
		}
		se.C = se.Engine.StartStorageEngine(ctx, wg)
		s.Engines = append(s.Engines, se)
	default:
		return fmt.Errorf("unknown storage engine %q", engineName)
	}

	return nil
}

// startResultDistributor receives computed results and fans them out to the
// various storage backends
func (s *StorageManager) startResultDistributor(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case r := <-s.ResultDistributor:
			// With no engines configured the result is discarded silently
			for _, e := range s.Engines {
				e.C <- r
			}
		case <-ctx.Done():
			return
		}
	}
}
