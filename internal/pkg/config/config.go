package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Token     TokenConfig
	Alert     AlertConfig
	Mail      MailConfig
	Worker    WorkerConfig
	Reconcile ReconcileConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Prefix namespaces every broker key.
	Prefix string `envconfig:"REDIS_KEY_PREFIX" default:"dispatch"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

type TokenConfig struct {
	AppBaseURL      string        `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
	VerificationTTL time.Duration `envconfig:"TOKEN_VERIFY_TTL" default:"24h"`
	ResetTTL        time.Duration `envconfig:"TOKEN_RESET_TTL" default:"1h"`
}

type AlertConfig struct {
	// Empty disables the operator alert on publish.
	OperatorEmails []string `envconfig:"ALERT_OPERATOR_EMAILS" default:""`
}

type MailConfig struct {
	// "smtp" or "log"
	Driver     string  `envconfig:"MAIL_DRIVER" default:"log"`
	Host       string  `envconfig:"SMTP_HOST" default:"localhost"`
	Port       string  `envconfig:"SMTP_PORT" default:"1025"`
	Username   string  `envconfig:"SMTP_USERNAME" default:""`
	Password   string  `envconfig:"SMTP_PASSWORD" default:""`
	From       string  `envconfig:"MAIL_FROM" default:"no-reply@localhost"`
	RatePerSec float64 `envconfig:"MAIL_RATE_PER_SEC" default:"10"`
	// Bounds a whole SMTP session when the caller sets no deadline.
	Timeout time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`
}

type WorkerConfig struct {
	Queues          []string      `envconfig:"WORKER_QUEUES" default:"content-high,content,email"`
	ReserveTimeout  time.Duration `envconfig:"WORKER_RESERVE_TIMEOUT" default:"2s"`
	PromoteInterval time.Duration `envconfig:"WORKER_PROMOTE_INTERVAL" default:"500ms"`
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s"`
	HandlerTimeout  time.Duration `envconfig:"WORKER_HANDLER_TIMEOUT" default:"2m"`
	// Zero keeps the per-queue default.
	Concurrency int `envconfig:"WORKER_CONCURRENCY" default:"0"`
}

type ReconcileConfig struct {
	Enabled   bool          `envconfig:"RECONCILE_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"RECONCILE_INTERVAL" default:"30s"`
	OrphanAge time.Duration `envconfig:"RECONCILE_ORPHAN_AGE" default:"60s"`
	StallAge  time.Duration `envconfig:"RECONCILE_STALL_AGE" default:"15m"`
	BatchSize int           `envconfig:"RECONCILE_BATCH_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is a development convenience; its absence is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:   "localhost:16379",
			Prefix: "dispatch-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-testing-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "lax",
		},
		Token: TokenConfig{
			AppBaseURL:      "http://localhost:3000",
			VerificationTTL: 24 * time.Hour,
			ResetTTL:        time.Hour,
		},
		Alert: AlertConfig{
			OperatorEmails: []string{"ops@example.com"},
		},
		Mail: MailConfig{
			Driver:     "log",
			From:       "no-reply@example.com",
			RatePerSec: 100,
			Timeout:    5 * time.Second,
		},
		Worker: WorkerConfig{
			Queues:          []string{"content-high", "content", "email"},
			ReserveTimeout:  200 * time.Millisecond,
			PromoteInterval: 50 * time.Millisecond,
			ShutdownTimeout: 5 * time.Second,
			HandlerTimeout:  10 * time.Second,
		},
		Reconcile: ReconcileConfig{
			Enabled:   false,
			Interval:  time.Second,
			OrphanAge: time.Second,
			StallAge:  time.Minute,
			BatchSize: 50,
		},
	}
}
