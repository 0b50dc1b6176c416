package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Deposit   DepositConfig
	RateCard  RateCardConfig
	Firestore FirestoreConfig
	Booking   BookingConfig
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

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
	// File enables a rotating file sink next to stdout when set.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER"`
}

// RedisConfig is optional; an empty address disables the rate card cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_RATE_CARD_TTL" default:"5m"`
}

// AMQPConfig is optional; an empty URL logs notifications instead of publishing them.
type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_QUEUE" default:"reservation_events"`
}

type DepositConfig struct {
	Amount decimal.Decimal `envconfig:"DEPOSIT_AMOUNT" default:"50.00"`
	// GatewayURL selects the HTTP gateway; empty uses the in-memory sandbox.
	GatewayURL string        `envconfig:"DEPOSIT_GATEWAY_URL"`
	APIKey     string        `envconfig:"DEPOSIT_GATEWAY_API_KEY"`
	Timeout    time.Duration `envconfig:"DEPOSIT_GATEWAY_TIMEOUT" default:"10s"`
}

type RateCardConfig struct {
	Source   string `envconfig:"RATE_CARD_SOURCE" default:"postgres"`
	FilePath string `envconfig:"RATE_CARD_FILE" default:"configs/rate_cards.yaml"`
}

type FirestoreConfig struct {
	ProjectID       string `envconfig:"FIRESTORE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIRESTORE_CREDENTIALS_FILE"`
	Collection      string `envconfig:"FIRESTORE_RATE_CARD_COLLECTION" default:"rate_cards"`
}

type BookingConfig struct {
	// TimeZone decides which calendar day is "today" for triage.
	TimeZone         string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
	// TriagePastWindow is the days of history in triage. 0 means no limit.
	TriagePastWindow int    `envconfig:"BOOKING_TRIAGE_PAST_DAYS" default:"30"`
}

const (
	RateCardSourcePostgres  = "postgres"
	RateCardSourceFirestore = "firestore"
	RateCardSourceFile      = "file"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.RateCard.Source {
	case RateCardSourcePostgres, RateCardSourceFirestore, RateCardSourceFile:
	default:
		return Config{}, fmt.Errorf("unknown RATE_CARD_SOURCE %q", cfg.RateCard.Source)
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
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Deposit: DepositConfig{
			Amount:  decimal.NewFromInt(50),
			Timeout: time.Second,
		},
		RateCard: RateCardConfig{
			Source: RateCardSourcePostgres,
		},
		Booking: BookingConfig{
			TimeZone:         "Asia/Tokyo",
			TriagePastWindow: 30,
		},
	}
}
