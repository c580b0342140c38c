// Package database provides TimescaleDB connection helpers and read access
// to the archived diagnostics table.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/internal/storage"
	"go.uber.org/zap"
)

// Client holds the connection to a TimescaleDB database
type Client struct {
	connectionString string
	DB               *gorm.DB // Exported so it can be accessed from other packages
	logger           *zap.SugaredLogger
}

// NewClient creates a new database client
func NewClient(connectionString string, logger *zap.SugaredLogger) *Client {
	return &Client{
		connectionString: connectionString,
		logger:           logger,
	}
}

// Connect connects to the TimescaleDB database
func (c *Client) Connect() error {
	var err error
	c.DB, err = CreateConnection(c.connectionString)
	return err
}

// GetRecentResults retrieves the most recent archived results for a
// diagnostic, newest first.
func (c *Client) GetRecentResults(diagnostic string, limit int) ([]storage.Result, error) {
	var results []storage.Result

	q := c.DB.Order("time DESC").Limit(limit)
	if diagnostic != "" {
		q = q.Where("diagnostic = ?", diagnostic)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("error querying database for recent results: %v", err)
	}

	return results, nil
}

// GetResultsByRequest retrieves all archived results for one request ID.
func (c *Client) GetResultsByRequest(requestID string) ([]storage.Result, error) {
	var results []storage.Result

	if err := c.DB.Where("request_id = ?", requestID).Order("time").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("error querying database for request %s: %v", requestID, err)
	}

	return results, nil
}

// CreateConnection is a helper function to create a database connection with standard GORM configuration
func CreateConnection(connectionString string) (*gorm.DB, error) {
	// Create a logger for gorm
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,        // Use colors
		},
	)

	config := &gorm.Config{
		Logger: dbLogger,
	}

	db, err := gorm.Open(postgres.Open(connectionString), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create a TimescaleDB connection: %w", err)
	}

	return db, nil
}
