package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Chat      ChatConfig      `yaml:"chat"`
	Recount   RecountConfig   `yaml:"recount"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SMTPConfig contains email notification settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// ChatConfig contains message polling settings
type ChatConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

// RecountConfig bounds the member-count stabilization loop
type RecountConfig struct {
	MaxRetries        int `yaml:"max_retries"`
	InitialIntervalMs int `yaml:"initial_interval_ms"`
}

// SchedulerConfig contains cron specs for maintenance jobs
type SchedulerConfig struct {
	ReconcileMemberCounts  string `yaml:"reconcile_member_counts"`
	ArchiveIdleGroups      string `yaml:"archive_idle_groups"`
	PurgeProcessedRequests string `yaml:"purge_processed_requests"`
	IdleDays               int    `yaml:"idle_days"`
	RequestRetentionDays   int    `yaml:"request_retention_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Chat.PollIntervalSeconds == 0 {
		c.Chat.PollIntervalSeconds = 5
	}
	if c.Recount.MaxRetries == 0 {
		c.Recount.MaxRetries = 5
	}
	if c.Recount.InitialIntervalMs == 0 {
		c.Recount.InitialIntervalMs = 200
	}
	if c.Scheduler.ReconcileMemberCounts == "" {
		c.Scheduler.ReconcileMemberCounts = "0 0 3 * * *"
	}
	if c.Scheduler.ArchiveIdleGroups == "" {
		c.Scheduler.ArchiveIdleGroups = "0 30 3 * * *"
	}
	if c.Scheduler.PurgeProcessedRequests == "" {
		c.Scheduler.PurgeProcessedRequests = "0 0 4 * * 0"
	}
	if c.Scheduler.IdleDays == 0 {
		c.Scheduler.IdleDays = 90
	}
	if c.Scheduler.RequestRetentionDays == 0 {
		c.Scheduler.RequestRetentionDays = 30
	}
}

// GetServerAddress returns the host:port the HTTP server listens on
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDatabaseConnectionString builds the lib/pq connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Database, c.Database.SSLMode)
}

// AccessTokenExpiry returns the configured access token lifetime
func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiry) * time.Minute
}

// RefreshTokenExpiry returns the configured refresh token lifetime
func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.JWT.RefreshTokenExpiry) * time.Minute
}

// PollInterval returns the chat poll interval
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Chat.PollIntervalSeconds) * time.Second
}
