package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetServerConfig() (*ServerData, error)
	GetStorageConfig() (*StorageData, error)
	GetConstants() (map[string]ConstantData, error)

	// Configuration management (for future SQLite-specific operations)
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Server    ServerData              `json:"server,omitempty"`
	Storage   StorageData             `json:"storage,omitempty"`
	Constants map[string]ConstantData `json:"constants,omitempty"`
}

// ServerData holds the REST server configuration
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
}

// StorageData holds the configuration for various storage backends
type StorageData struct {
	TimescaleDB *TimescaleDBData `json:"timescaledb,omitempty"`
}

type TimescaleDBData struct {
	ConnectionString string `json:"connection_string"`
}

// ConstantData is a named physical constant with its units. Entries here
// override the built-in defaults used by the diagnostics.
type ConstantData struct {
	Value float64 `json:"value"`
	Units string  `json:"units,omitempty"`
}

// DefaultPort is used when the server section does not set one.
const DefaultPort = 8090
