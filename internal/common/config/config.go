// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Match    MatchConfig    `mapstructure:"match"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Browse   BrowseConfig   `mapstructure:"browse"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// MatchConfig holds ranking engine settings.
type MatchConfig struct {
	TopK        int           `mapstructure:"top_k"`
	RankByScore bool          `mapstructure:"rank_by_score"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	CatalogPath string        `mapstructure:"catalog_path"`
}

// QueueConfig holds the queue state machine timing settings. CompleteAfter is
// intentionally independent of the estimated wait values: the estimate only
// feeds the user-facing progress fraction.
type QueueConfig struct {
	CompleteAfter           time.Duration `mapstructure:"complete_after"`
	TickInterval            time.Duration `mapstructure:"tick_interval"`
	MessageRotationInterval time.Duration `mapstructure:"message_rotation_interval"`
	EstimatedWait           struct {
		JoinExisting time.Duration `mapstructure:"join_existing"`
		BuildNew     time.Duration `mapstructure:"build_new"`
	} `mapstructure:"estimated_wait"`
}

// BrowseConfig holds passive list / browse table settings.
type BrowseConfig struct {
	DefaultMinConfidence int `mapstructure:"default_min_confidence"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	MetricsAddress  string        `mapstructure:"metrics_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "matchmaking-engine"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Match.TopK <= 0 {
		cfg.Match.TopK = 3
	}
	if cfg.Match.CacheTTL <= 0 {
		cfg.Match.CacheTTL = 5 * time.Minute
	}
	if cfg.Queue.CompleteAfter <= 0 {
		cfg.Queue.CompleteAfter = 5 * time.Second
	}
	if cfg.Queue.TickInterval <= 0 {
		cfg.Queue.TickInterval = time.Second
	}
	if cfg.Queue.MessageRotationInterval <= 0 {
		cfg.Queue.MessageRotationInterval = 2 * time.Second
	}
	if cfg.Queue.EstimatedWait.JoinExisting <= 0 {
		cfg.Queue.EstimatedWait.JoinExisting = 180 * time.Second
	}
	if cfg.Queue.EstimatedWait.BuildNew <= 0 {
		cfg.Queue.EstimatedWait.BuildNew = 300 * time.Second
	}
	if cfg.Browse.DefaultMinConfidence == 0 {
		cfg.Browse.DefaultMinConfidence = 80
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Postgres.MaxConnections <= 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle <= 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Elasticsearch.Index == "" {
		cfg.Database.Elasticsearch.Index = "projects"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.MetricsAddress == "" {
		cfg.Server.MetricsAddress = ":9090"
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Match.TopK <= 0 {
		return fmt.Errorf("match.top_k must be positive")
	}
	if cfg.Queue.CompleteAfter <= 0 {
		return fmt.Errorf("queue.complete_after must be positive")
	}
	if cfg.Queue.TickInterval <= 0 {
		return fmt.Errorf("queue.tick_interval must be positive")
	}
	if cfg.Queue.MessageRotationInterval <= 0 {
		return fmt.Errorf("queue.message_rotation_interval must be positive")
	}
	if cfg.Browse.DefaultMinConfidence < 0 || cfg.Browse.DefaultMinConfidence > 100 {
		return fmt.Errorf("browse.default_min_confidence must be within [0,100]")
	}
	if cfg.Database.Postgres.Enabled {
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when postgres is enabled")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required when postgres is enabled")
		}
	}
	if cfg.Database.Redis.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when redis is enabled")
	}
	if cfg.Database.Elasticsearch.Enabled && len(cfg.Database.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("database.elasticsearch.addresses is required when elasticsearch is enabled")
	}
	return nil
}
