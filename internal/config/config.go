// Package config loads the process configuration from the environment.
//
// Values are read with envconfig after an optional .env file has been loaded
// by godotenv; real environment variables always take precedence over the
// file. The result is checked with the shared validator.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gabapcia/alertforge/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when the environment cannot be parsed or fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Ledger backends accepted by LEDGER_BACKEND.
const (
	LedgerPostgres = "postgres"
	LedgerRedis    = "redis"
)

// TelegramConfig holds the TELEGRAM_* variables.
type TelegramConfig struct {
	BotToken  string `envconfig:"BOT_TOKEN" validate:"required"`
	ServerURL string `envconfig:"SERVER_URL" validate:"omitempty,url"`
}

// HeliusConfig holds the HELIUS_* variables.
type HeliusConfig struct {
	APIKey   string        `envconfig:"API_KEY" validate:"required"`
	BaseURL  string        `envconfig:"BASE_URL" default:"https://api.helius.xyz/v0" validate:"required,url"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"15s" validate:"min=1s"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"0" validate:"min=0,max=10"`
}

// DatabaseConfig holds the DATABASE_* variables.
type DatabaseConfig struct {
	URL string `envconfig:"URL" validate:"required"`
}

// RedisConfig holds the REDIS_* variables.
type RedisConfig struct {
	Addr      string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"min=0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"alertforge"`
}

// EngineConfig holds the monitoring engine tuning variables.
type EngineConfig struct {
	PaymentWallet      string        `envconfig:"PAYMENT_WALLET" validate:"omitempty,solana_address"`
	USDCMint           string        `envconfig:"USDC_MINT" default:"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" validate:"required,solana_address"`
	PollInterval       time.Duration `envconfig:"POLL_INTERVAL" default:"60s" validate:"min=1s"`
	WalletFetchLimit   int           `envconfig:"WALLET_FETCH_LIMIT" default:"5" validate:"min=1,max=100"`
	PaymentFetchLimit  int           `envconfig:"PAYMENT_FETCH_LIMIT" default:"10" validate:"min=1,max=100"`
	SeedFetchLimit     int           `envconfig:"SEED_FETCH_LIMIT" default:"50" validate:"min=1,max=100"`
	PruneEveryPasses   int           `envconfig:"PRUNE_EVERY_PASSES" default:"1440" validate:"min=0"`
	SignatureRetention time.Duration `envconfig:"SIGNATURE_RETENTION" default:"168h" validate:"min=1m"`
	WorkerCount        int           `envconfig:"WORKER_COUNT" default:"4" validate:"min=1,max=64"`
	PassLeaseEnabled   bool          `envconfig:"PASS_LEASE_ENABLED" default:"false"`
}

// Config is the complete process configuration.
type Config struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	OTELEnabled   bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName   string `envconfig:"SERVICE_NAME" default:"alertforge" validate:"required"`
	LedgerBackend string `envconfig:"LEDGER_BACKEND" default:"postgres" validate:"oneof=postgres redis"`

	Telegram TelegramConfig `envconfig:"TELEGRAM"`
	Helius   HeliusConfig   `envconfig:"HELIUS"`
	Database DatabaseConfig `envconfig:"DATABASE"`
	Redis    RedisConfig    `envconfig:"REDIS"`

	EngineConfig
}

// UsesRedis reports whether any component needs a Redis connection.
func (c Config) UsesRedis() bool {
	return c.LedgerBackend == LedgerRedis || c.PassLeaseEnabled
}

// Load reads the configuration. With no arguments it loads ./.env when the
// file exists; otherwise every named file must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LogFields returns the configuration as logger key/value pairs with every
// secret masked.
func (c Config) LogFields() []any {
	return []any{
		"config.log_level", c.LogLevel,
		"config.otel_enabled", c.OTELEnabled,
		"config.ledger_backend", c.LedgerBackend,
		"config.telegram.bot_token", maskSecret(c.Telegram.BotToken),
		"config.helius.api_key", maskSecret(c.Helius.APIKey),
		"config.helius.base_url", c.Helius.BaseURL,
		"config.database.url", redactURL(c.Database.URL),
		"config.redis.addr", c.Redis.Addr,
		"config.redis.password", maskSecret(c.Redis.Password),
		"config.engine.payment_wallet", c.PaymentWallet,
		"config.engine.poll_interval", c.PollInterval.String(),
		"config.engine.workers", c.WorkerCount,
		"config.engine.pass_lease", c.PassLeaseEnabled,
	}
}

// maskSecret hides all but the first and last 4 characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 8 {
		if len(s) == 0 {
			return "(not set)"
		}
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// redactURL hides the password of a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return "(not set)"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "****"
	}

	return u.Redacted()
}
