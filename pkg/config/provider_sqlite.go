package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	server, err := s.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	config.Server = *server

	storage, err := s.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	config.Storage = *storage

	constants, err := s.GetConstants()
	if err != nil {
		return nil, fmt.Errorf("failed to load constants: %w", err)
	}
	config.Constants = constants

	return config, nil
}

// GetServerConfig returns the server configuration from the database
func (s *SQLiteProvider) GetServerConfig() (*ServerData, error) {
	query := `
		SELECT listen_addr, port, cert, key
		FROM server
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	server := &ServerData{Port: DefaultPort}

	var listenAddr, cert, key sql.NullString
	var port sql.NullInt64

	err := s.db.QueryRow(query).Scan(&listenAddr, &port, &cert, &key)
	if err == sql.ErrNoRows {
		return server, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query server config: %w", err)
	}

	if listenAddr.Valid {
		server.ListenAddr = listenAddr.String
	}
	if port.Valid && port.Int64 != 0 {
		server.Port = int(port.Int64)
	}
	if cert.Valid {
		server.Cert = cert.String
	}
	if key.Valid {
		server.Key = key.String
	}

	return server, nil
}

// GetStorageConfig returns the storage configuration from the database
func (s *SQLiteProvider) GetStorageConfig() (*StorageData, error) {
	query := `
		SELECT backend_type, timescale_connection_string
		FROM storage_configs
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query storage configs: %w", err)
	}
	defer rows.Close()

	storage := &StorageData{}
	for rows.Next() {
		var backendType string
		var connString sql.NullString

		if err := rows.Scan(&backendType, &connString); err != nil {
			return nil, fmt.Errorf("failed to scan storage config row: %w", err)
		}

		switch backendType {
		case "timescaledb":
			if connString.Valid {
				storage.TimescaleDB = &TimescaleDBData{
					ConnectionString: connString.String,
				}
			}
		}
	}

	return storage, rows.Err()
}

// GetConstants returns the physical-constant overrides from the database
func (s *SQLiteProvider) GetConstants() (map[string]ConstantData, error) {
	query := `
		SELECT name, value, units
		FROM constants
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
		ORDER BY name
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query constants: %w", err)
	}
	defer rows.Close()

	constants := make(map[string]ConstantData)
	for rows.Next() {
		var name string
		var value float64
		var units sql.NullString

		if err := rows.Scan(&name, &value, &units); err != nil {
			return nil, fmt.Errorf("failed to scan constant row: %w", err)
		}

		c := ConstantData{Value: value}
		if units.Valid {
			c.Units = units.String
		}
		constants[name] = c
	}

	return constants, rows.Err()
}

// IsReadOnly returns false since SQLite configurations can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
