package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, provider credentials), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Session    SessionConfig
	Booking    BookingConfig
	Cloudbeds  CloudbedsConfig
	QPay       QPayConfig
	Stripe     StripeConfig
	Reconciler ReconcilerConfig
	RateLimit  RateLimitConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ulaanbaatar"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	// serialization failures and deadlocks are retried this many times
	TxRetries   int           `envconfig:"DB_TX_RETRIES" default:"3"`
	TxRetryBase time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"resort"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Accept-Language,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ulaanbaatar"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret              string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"8h"`
	Leeway              time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

// HMAC-SHA256 keys shorter than the hash add nothing but risk.
const minJWTSecretLen = 32

func (c JWTConfig) validate() error {
	if len(c.Secret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	if c.AccessTokenDuration <= 0 {
		return fmt.Errorf("JWT_ACCESS_TOKEN_DURATION must be positive")
	}
	return nil
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

type BookingConfig struct {
	Currency       string        `envconfig:"BOOKING_CURRENCY" default:"MNT"`
	TimeZone       string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Ulaanbaatar"`
	MaxNights      int           `envconfig:"BOOKING_MAX_NIGHTS" default:"30"`
	IdempotencyTTL time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	DefaultLocale  string        `envconfig:"BOOKING_DEFAULT_LOCALE" default:"en"`
}

type CloudbedsConfig struct {
	BaseURL    string        `envconfig:"CLOUDBEDS_BASE_URL" default:"https://api.cloudbeds.com/api/v1.2"`
	APIKey     string        `envconfig:"CLOUDBEDS_API_KEY" required:"true"`
	PropertyID string        `envconfig:"CLOUDBEDS_PROPERTY_ID" required:"true"`
	Timeout    time.Duration `envconfig:"CLOUDBEDS_TIMEOUT" default:"15s"`
}

type QPayConfig struct {
	BaseURL     string        `envconfig:"QPAY_BASE_URL" default:"https://merchant.qpay.mn/v2"`
	Username    string        `envconfig:"QPAY_USERNAME" required:"true"`
	Password    string        `envconfig:"QPAY_PASSWORD" required:"true"`
	InvoiceCode string        `envconfig:"QPAY_INVOICE_CODE" required:"true"`
	CallbackURL string        `envconfig:"QPAY_CALLBACK_URL" required:"true"`
	Timeout     time.Duration `envconfig:"QPAY_TIMEOUT" default:"15s"`
}

type StripeConfig struct {
	Enabled       bool   `envconfig:"STRIPE_ENABLED" default:"false"`
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
}

type ReconcilerConfig struct {
	Enabled     bool          `envconfig:"RECONCILER_ENABLED" default:"true"`
	Interval    time.Duration `envconfig:"RECONCILER_INTERVAL" default:"30s"`
	Concurrency int           `envconfig:"RECONCILER_CONCURRENCY" default:"4"`
	BatchSize   int           `envconfig:"RECONCILER_BATCH_SIZE" default:"50"`
	MaxAge      time.Duration `envconfig:"RECONCILER_MAX_AGE" default:"48h"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c StripeConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if !strings.HasPrefix(c.SecretKey, "sk_") && !strings.HasPrefix(c.SecretKey, "rk_") {
		return fmt.Errorf("STRIPE_SECRET_KEY must be a secret or restricted key when STRIPE_ENABLED=true")
	}
	if c.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required when STRIPE_ENABLED=true")
	}
	return nil
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.JWT.validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Stripe.validate(); err != nil {
		return Config{}, err
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
			TimeZone: "Asia/Ulaanbaatar",
			MaxConns: 5,

			TxRetries:   3,
			TxRetryBase: 10 * time.Millisecond,
		},
		Redis: RedisConfig{
			Addr:      "localhost:16379",
			KeyPrefix: "resort-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ulaanbaatar",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-for-the-lakeside-desk",
			AccessTokenDuration: time.Hour,
		},
		Session: SessionConfig{
			TTL: time.Hour,
		},
		Booking: BookingConfig{
			Currency:       "MNT",
			TimeZone:       "Asia/Ulaanbaatar",
			MaxNights:      30,
			IdempotencyTTL: time.Hour,
			DefaultLocale:  "en",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 600,
			Burst:             100,
		},
	}
}
