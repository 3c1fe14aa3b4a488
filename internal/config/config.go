package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Auth      AuthConfig      `mapstructure:"auth"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flag set from the command line, not the config file.
	ForceMigrate bool `mapstructure:"-"`

	// mu guards the hot-reloadable sections (JWT, Auth, Admin) against the
	// config watcher writing while request goroutines read.
	mu sync.RWMutex
}

// ApplyReloadable copies the hot-reloadable sections from a freshly loaded
// config. Everything else (server, database, redis, storage, CORS, rate
// limits) is captured at startup and needs a restart.
func (c *Config) ApplyReloadable(newCfg *Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.JWT = newCfg.JWT
	c.Auth = newCfg.Auth
	c.Admin = newCfg.Admin
}

// Request-path readers go through these accessors so a reload cannot tear a
// value mid-read. Rotating jwt.secret invalidates all outstanding sessions,
// which is the only revocation mechanism the stateless tokens have.

func (c *Config) JWTSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.JWT.Secret
}

func (c *Config) JWTExpireTime() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.JWT.ExpireTime
}

func (c *Config) RecheckAdminRole() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Auth.RecheckAdminRole
}

func (c *Config) PromoteSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Admin.PromoteSecret
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type AuthConfig struct {
	// RecheckAdminRole re-reads the role from the database on admin routes so a
	// demoted admin's still-live token stops working before it expires.
	RecheckAdminRole bool `mapstructure:"recheck_admin_role"`
}

type AdminConfig struct {
	// PromoteSecret guards the bootstrap promote-to-admin endpoint.
	PromoteSecret string `mapstructure:"promote_secret"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("CODEDEX")
	viper.AutomaticEnv()

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("admin.promote_secret", "ADMIN_PROMOTE_SECRET")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	viper.BindEnv("server.mode", "SERVER_MODE")

	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	// A weak signing secret makes every session forgeable; refuse to start with
	// one in release mode.
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}
