package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends selectable via config.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	StorageBackend string        `yaml:"storage_backend"`
	DataDir        string        `yaml:"data_dir"`
	DatabasePath   string        `yaml:"database_path"`
}

// LoadConfig builds the config from defaults and HUSTLEHUB_* env vars, then
// overlays the optional YAML file at path.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("HUSTLEHUB_ADDR", ":8080"),
		APITimeout:     15 * time.Second,
		StorageBackend: getEnv("HUSTLEHUB_STORAGE", StorageFile),
		DataDir:        getEnv("HUSTLEHUB_DATA_DIR", "data"),
		DatabasePath:   getEnv("HUSTLEHUB_DATABASE_PATH", "hustlehub.db"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.StorageBackend {
	case StorageFile:
		if c.DataDir == "" {
			return fmt.Errorf("data_dir must not be empty for the file backend")
		}
	case StorageSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path must not be empty for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
