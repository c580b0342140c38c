package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Server struct {
			ListenAddr string `yaml:"listen_addr,omitempty"`
			Port       int    `yaml:"port,omitempty"`
			Cert       string `yaml:"cert,omitempty"`
			Key        string `yaml:"key,omitempty"`
		} `yaml:"server,omitempty"`
		Storage struct {
			TimescaleDB *struct {
				ConnectionString string `yaml:"connection-string"`
			} `yaml:"timescaledb,omitempty"`
		} `yaml:"storage,omitempty"`
		Constants map[string]struct {
			Value float64 `yaml:"value"`
			Units string  `yaml:"units,omitempty"`
		} `yaml:"constants,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Server: ServerData{
			ListenAddr: yamlConfig.Server.ListenAddr,
			Port:       yamlConfig.Server.Port,
			Cert:       yamlConfig.Server.Cert,
			Key:        yamlConfig.Server.Key,
		},
	}
	if config.Server.Port == 0 {
		config.Server.Port = DefaultPort
	}

	if yamlConfig.Storage.TimescaleDB != nil {
		config.Storage.TimescaleDB = &TimescaleDBData{
			ConnectionString: yamlConfig.Storage.TimescaleDB.ConnectionString,
		}
	}

	if len(yamlConfig.Constants) > 0 {
		config.Constants = make(map[string]ConstantData, len(yamlConfig.Constants))
		for name, c := range yamlConfig.Constants {
			config.Constants[name] = ConstantData{Value: c.Value, Units: c.Units}
		}
	}

	y.config = config
	return config, nil
}

// GetServerConfig returns the server configuration section
func (y *YAMLProvider) GetServerConfig() (*ServerData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Server, nil
}

// GetStorageConfig returns the storage configuration section
func (y *YAMLProvider) GetStorageConfig() (*StorageData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Storage, nil
}

// GetConstants returns the physical-constant overrides
func (y *YAMLProvider) GetConstants() (map[string]ConstantData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config.Constants, nil
}

// IsReadOnly returns true since YAML files are read-only in this implementation
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
