package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream keys, etc.)
// - default: Values common across all environments (timezone, bands, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Chat   ChatConfig
	Redis  RedisConfig
	Locale LocaleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// DBConfig describes the managed Postgres store that holds clickout rows.
// An empty DB_USER disables persistence entirely; click recording then falls
// back to log-only mode.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:""`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"foodai"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Helsinki"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// JWTConfig guards the /api/admin routes. An empty secret leaves the guard
// open, matching the convention-only protection of the original dashboards.
type JWTConfig struct {
	Secret   string `envconfig:"ADMIN_JWT_SECRET" default:""`
	Duration string `envconfig:"ADMIN_JWT_DURATION" default:"24h"`
}

// ChatConfig points the assistant bridge at a DeepSeek-compatible completion
// API. An empty key disables the bridge; chat endpoints answer 503.
type ChatConfig struct {
	APIKey      string  `envconfig:"DEEPSEEK_API_KEY" default:""`
	BaseURL     string  `envconfig:"DEEPSEEK_BASE_URL" default:"https://api.deepseek.com/v1"`
	Model       string  `envconfig:"DEEPSEEK_MODEL" default:"deepseek-chat"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"1000"`
	Temperature float64 `envconfig:"CHAT_TEMPERATURE" default:"0.7"`
	RateLimit   int     `envconfig:"CHAT_RATE_LIMIT" default:"20"`
	RateWindow  string  `envconfig:"CHAT_RATE_WINDOW" default:"1m"`
}

// RedisConfig backs the chat rate limiter. Empty URL falls back to the
// in-process limiter.
type RedisConfig struct {
	URL          string `envconfig:"REDIS_URL" default:""`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
}

type LocaleConfig struct {
	Code string `envconfig:"LOCALE" default:"fi"`
}

func (c *DBConfig) Enabled() bool {
	return c.User != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Helsinki",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Locale: LocaleConfig{Code: "fi"},
		Chat: ChatConfig{
			Model:      "deepseek-chat",
			MaxTokens:  64,
			RateLimit:  1000,
			RateWindow: "1m",
		},
	}
}
