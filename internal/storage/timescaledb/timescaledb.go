// Package timescaledb implements a TimescaleDB storage backend for
// archived diagnostic results.
package timescaledb

import (
	"context"
	"sync"

	"github.com/chrissnell/oceandiags/internal/database"
	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/internal/storage"
	"gorm.io/gorm"
)

// Storage holds the configuration for a TimescaleDB storage backend
type Storage struct {
	TimescaleDBConn *gorm.DB
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS diagnostics (
	time        TIMESTAMPTZ NOT NULL,
	request_id  UUID,
	diagnostic  TEXT,
	field_name  TEXT,
	units       TEXT,
	shape       TEXT,
	payload     JSONB
)`

const createExtensionSQL = `CREATE EXTENSION IF NOT EXISTS timescaledb`

const createHypertableSQL = `SELECT create_hypertable('diagnostics', 'time', if_not_exists => TRUE)`

const createRequestIndexSQL = `CREATE INDEX IF NOT EXISTS diagnostics_request_id_idx ON diagnostics (request_id, time DESC)`

const createDiagnosticIndexSQL = `CREATE INDEX IF NOT EXISTS diagnostics_diagnostic_idx ON diagnostics (diagnostic, time DESC)`

// StartStorageEngine creates a goroutine loop to receive results and send
// them off to TimescaleDB
func (t *Storage) StartStorageEngine(ctx context.Context, wg *sync.WaitGroup) chan<- storage.Result {
	log.Info("starting TimescaleDB storage engine...")
	resultChan := make(chan storage.Result, 10)
	go t.processResults(ctx, wg, resultChan)
	return resultChan
}

func (t *Storage) processResults(ctx context.Context, wg *sync.WaitGroup, rchan <-chan storage.Result) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case r := <-rchan:
			if err := t.StoreResult(r); err != nil {
				log.Error("could not store result:", err)
			}
		case <-ctx.Done():
			log.Info("cancellation request received. Cancelling results processor.")
			return
		}
	}
}

// StoreResult stores a diagnostic result in TimescaleDB
func (t *Storage) StoreResult(r storage.Result) error {
	err := t.TimescaleDBConn.Create(&r).Error
	if err != nil {
		log.Error("could not store result:", err)
		return err
	}
	return nil
}

// New sets up a new TimescaleDB storage backend
func New(ctx context.Context, connectionString string) (*Storage, error) {
	var err error
	t := Storage{}

	log.Info("connecting to TimescaleDB...")
	t.TimescaleDBConn, err = database.CreateConnection(connectionString)
	if err != nil {
		log.Warn("warning: unable to create a TimescaleDB connection:", err)
		return &Storage{}, err
	}

	// Create the database table
	log.Info("creating database table...")
	err = t.TimescaleDBConn.WithContext(ctx).Exec(createTableSQL).Error
	if err != nil {
		log.Warn("warning: could not create table in database")
		return &Storage{}, err
	}

	// Create the TimescaleDB extension
	log.Info("creating TimescaleDB extension...")
	err = t.TimescaleDBConn.WithContext(ctx).Exec(createExtensionSQL).Error
	if err != nil {
		log.Warn("warning: could not create TimescaleDB extension")
		return &Storage{}, err
	}

	// Create the hypertable
	log.Info("creating hypertable...")
	err = t.TimescaleDBConn.WithContext(ctx).Exec(createHypertableSQL).Error
	if err != nil {
		log.Warn("warning: could not create hypertable")
		return &Storage{}, err
	}

	// Create the lookup indexes
	log.Info("creating indexes...")
	for _, stmt := range []string{createRequestIndexSQL, createDiagnosticIndexSQL} {
		if err = t.TimescaleDBConn.WithContext(ctx).Exec(stmt).Error; err != nil {
			log.Warn("warning: could not create index")
			return &Storage{}, err
		}
	}

	return &t, nil
}
