package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"hotelhub/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Drift      DriftConfig      `yaml:"drift"`
	Exports    ExportConfig     `yaml:"exports"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	SeedHotels []models.Hotel   `yaml:"seed_hotels"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type ServerConfig struct {
	Addr        string          `yaml:"addr"`
	CORSOrigins []string        `yaml:"cors_origins"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type StorageConfig struct {
	Backend    string      `yaml:"backend"` // sqlite, redis, memory
	SQLitePath string      `yaml:"sqlite_path"`
	Redis      RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type DriftConfig struct {
	Enabled         bool    `yaml:"enabled"`
	IntervalSeconds int     `yaml:"interval_seconds"`
	Chance          float64 `yaml:"chance"`
}

// Interval returns the drift tick period.
func (d DriftConfig) Interval() time.Duration {
	return time.Duration(d.IntervalSeconds) * time.Second
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

func Load(configPath string) (*Config, error) {
	// .env is optional; environment variables referenced in the YAML are
	// expanded before parsing.
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite backend")
		}
	case "redis":
		if c.Storage.Redis.Address == "" {
			return errors.New("storage.redis.address is required for the redis backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	return ValidateSeedHotels(c.SeedHotels)
}

// ValidateSeedHotels rejects duplicate ids and room counts that violate the
// catalog invariant.
func ValidateSeedHotels(hotels []models.Hotel) error {
	ids := make(map[string]bool)
	for _, h := range hotels {
		if h.ID == "" {
			return fmt.Errorf("seed hotel %q has an empty id", h.Name)
		}
		if ids[h.ID] {
			return fmt.Errorf("duplicate seed hotel id: %s", h.ID)
		}
		ids[h.ID] = true

		if h.AvailableRooms < 0 || h.AvailableRooms > h.TotalRooms {
			return fmt.Errorf("seed hotel %q: available rooms %d outside [0, %d]", h.Name, h.AvailableRooms, h.TotalRooms)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "hotelhub"
	}
	if c.App.Environment == "" {
		c.App.Environment = "production"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RateLimit.RPS == 0 {
		c.Server.RateLimit.RPS = models.RateLimitRPS
	}
	if c.Server.RateLimit.Burst == 0 {
		c.Server.RateLimit.Burst = models.RateLimitBurst
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "sqlite"
	}
	if c.Storage.Backend == "sqlite" && c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/hotelhub.db"
	}
	if c.Drift.IntervalSeconds == 0 {
		c.Drift.IntervalSeconds = models.DefaultDriftInterval
	}
	if c.Drift.Chance == 0 {
		c.Drift.Chance = models.DefaultDriftChance
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if len(c.SeedHotels) == 0 {
		c.SeedHotels = models.DefaultHotels()
	}
}
