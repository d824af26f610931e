package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Storage  StorageConfig  `yaml:"storage"`
	Resort   ResortConfig   `yaml:"resort"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Redis is optional; an empty Addr disables the availability cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Kafka is optional; no brokers disables event publishing.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	PackageEventsTopic string   `yaml:"package_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type StorageConfig struct {
	Backend       string `yaml:"backend"`
	CustomersPath string `yaml:"customers_path"`
	PackagesPath  string `yaml:"packages_path"`
	// StrictLoad fails startup on unreadable data instead of starting empty.
	StrictLoad bool `yaml:"strict_load"`
}

type ResortConfig struct {
	AvailabilityCacheTTL int `yaml:"availability_cache_ttl_seconds"`
}

// Path returns the config file location from CONFIG_PATH, falling back to
// config.yaml. A .env file in the working directory is read first if present;
// it never overrides variables already set.
func Path() string {
	_ = godotenv.Load()
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageFile
	}
	if c.Storage.CustomersPath == "" {
		c.Storage.CustomersPath = "customers.json"
	}
	if c.Storage.PackagesPath == "" {
		c.Storage.PackagesPath = "packages.json"
	}
	if c.Resort.AvailabilityCacheTTL == 0 {
		c.Resort.AvailabilityCacheTTL = 30
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageFile, StoragePostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}

func (r ResortConfig) CacheTTL() time.Duration {
	return time.Duration(r.AvailabilityCacheTTL) * time.Second
}
