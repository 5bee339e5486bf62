package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jwalitptl/clinic-tracker/pkg/messaging/redis"
)

const DefaultMaxUploadBytes = 16 << 20

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Redis     RedisConfig     `mapstructure:"redis"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	DueSoon   DueSoonConfig   `mapstructure:"due_soon"`
	Seed      SeedConfig      `mapstructure:"seed"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	TimeoutSeconds int      `mapstructure:"timeoutSeconds"`
	Mode           string   `mapstructure:"mode"`
	MetricsPrefix  string   `mapstructure:"metrics_prefix"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	Migrate  bool   `mapstructure:"migrate"`
}

// DSN renders the lib/pq key/value connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type SessionConfig struct {
	Secret       string `mapstructure:"secret"`
	TTLHours     int    `mapstructure:"ttl_hours"`
	CookieName   string `mapstructure:"cookie_name"`
	SecureCookie bool   `mapstructure:"secure_cookie"`
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

type UploadConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBytes int64  `mapstructure:"max_bytes"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	Channel      string        `mapstructure:"channel"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
}

func (c *RedisConfig) Enabled() bool {
	return c.URL != ""
}

func (c *RedisConfig) ToBrokerConfig() redis.Config {
	return redis.Config{
		URL:          c.URL,
		MaxRetries:   c.MaxRetries,
		RetryBackoff: c.RetryBackoff,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
	}
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	BaseURL  string `mapstructure:"base_url"`
}

func (c *SMTPConfig) Enabled() bool {
	return c.Host != ""
}

type DueSoonConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Interval    time.Duration `mapstructure:"interval"`
	WindowDays  int           `mapstructure:"window_days"`
	DedupeHours int           `mapstructure:"dedupe_hours"`
	HealthPort  int           `mapstructure:"health_port"`
}

type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminFullName string `mapstructure:"admin_full_name"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	LoginPerMinute    int     `mapstructure:"login_per_minute"`
	LoginBurst        int     `mapstructure:"login_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// env aliases that do not follow the section_key naming
var aliases = map[string][]string{
	"server.port":      {"PORT"},
	"session.secret":   {"SESSION_SECRET", "SECRET_KEY"},
	"upload.max_bytes": {"MAX_UPLOAD_BYTES", "MAX_CONTENT_LENGTH"},
	"upload.dir":       {"UPLOAD_FOLDER"},
	"redis.url":        {"REDIS_URL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.timeoutSeconds", 30)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.metrics_prefix", "clinic_tracker")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "clinic_tracker")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrate", true)

	v.SetDefault("session.secret", "dev-secret-change-me")
	v.SetDefault("session.ttl_hours", 12)
	v.SetDefault("session.cookie_name", "clinic_session")
	v.SetDefault("session.secure_cookie", false)

	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_bytes", DefaultMaxUploadBytes)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.channel", "clinic-tracker:notifications")
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.retry_backoff", 100*time.Millisecond)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 1)

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "checklist@localhost")
	v.SetDefault("smtp.base_url", "http://localhost:5000")

	v.SetDefault("due_soon.enabled", true)
	v.SetDefault("due_soon.interval", time.Hour)
	v.SetDefault("due_soon.window_days", 3)
	v.SetDefault("due_soon.dedupe_hours", 24)
	v.SetDefault("due_soon.health_port", 8081)

	v.SetDefault("seed.admin_username", "kelly")
	v.SetDefault("seed.admin_password", "VIPAdmin1!")
	v.SetDefault("seed.admin_full_name", "Kelly (Admin)")

	v.SetDefault("rate_limit.requests_per_second", 50)
	v.SetDefault("rate_limit.burst", 100)
	v.SetDefault("rate_limit.login_per_minute", 10)
	v.SetDefault("rate_limit.login_burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// LoadConfig reads config.yaml from . or ./config when present, then applies
// environment overrides. A missing file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session.secret must not be empty")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}
	if c.DueSoon.WindowDays < 0 {
		return errors.New("due_soon.window_days must not be negative")
	}
	if c.DueSoon.Interval <= 0 {
		c.DueSoon.Interval = time.Hour
	}
	if c.Session.TTLHours <= 0 {
		c.Session.TTLHours = 12
	}
	return nil
}
