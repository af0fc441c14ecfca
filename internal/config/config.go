package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	ErrJWTSecretMissing   = errors.New("JWT secret not configured")
	ErrDatabaseDSNMissing = errors.New("database DSN not configured")
	ErrInvalidPollPeriod  = errors.New("price poll interval must be positive")
)

// Arguments - переменные окружения сервиса
type Arguments struct {
	ListenAddr        string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN       string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:""`
	AdminEmails       string        `env:"ADMIN_EMAILS" envDefault:""`
	CookieSecure      bool          `env:"COOKIE_SECURE" envDefault:"false"`
	MaxPageLimit      int           `env:"MAX_PAGE_LIMIT" envDefault:"0"`
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:""`
	PriceAPIAddr      string        `env:"PRICE_API_ADDR" envDefault:"https://api.coingecko.com"`
	BscScanAPIAddr    string        `env:"BSCSCAN_API_ADDR" envDefault:"https://api.bscscan.com"`
	BscScanAPIKey     string        `env:"BSCSCAN_API_KEY" envDefault:""`
	PricePollInterval time.Duration `env:"PRICE_POLL_INTERVAL" envDefault:"60s"`
}

// ServerConfig модель настроек HTTP сервера
type ServerConfig struct {
	ListenAddr   string
	LogLevel     string
	JWTSecret    string
	DatabaseDSN  string
	AdminEmails  []string
	CookieSecure bool
	MaxPageLimit int
}

// MarketConfig модель настроек внешних источников цен и балансов
type MarketConfig struct {
	RedisAddr      string
	PriceAPIAddr   string
	BscScanAPIAddr string
	BscScanAPIKey  string
	PollInterval   time.Duration
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Market MarketConfig
}

// NewConfig - загрузка настроек из .env, окружения и аргументов командной строки
func NewConfig() Config {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse config: %s", err.Error()))
	}
	return cfg
}

// ParseConfig - разбор настроек. Флаги имеют приоритет над окружением
func ParseConfig(arguments []string) (Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	flags := pflag.NewFlagSet("exchange", pflag.ContinueOnError)
	var (
		server   = flags.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = flags.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = flags.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = flags.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		redis    = flags.StringP("redis", "r", args.RedisAddr, "Redis address for market data cache")
		poll     = flags.Duration("price_poll", args.PricePollInterval, "Market price refresh interval")
	)
	if err := flags.Parse(arguments); err != nil {
		return Config{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Server = ServerConfig{
		ListenAddr:   *server,
		LogLevel:     *logLevel,
		DatabaseDSN:  *DSN,
		JWTSecret:    *secret,
		AdminEmails:  splitList(args.AdminEmails),
		CookieSecure: args.CookieSecure,
		MaxPageLimit: args.MaxPageLimit,
	}
	cfg.Market.RedisAddr = *redis
	cfg.Market.PriceAPIAddr = args.PriceAPIAddr
	cfg.Market.BscScanAPIAddr = args.BscScanAPIAddr
	cfg.Market.BscScanAPIKey = args.BscScanAPIKey
	cfg.Market.PollInterval = *poll

	return cfg, nil
}

// Validate - проверка обязательных параметров. Без секрета или с нулевым периодом опроса цен сервис не стартует
func (c Config) Validate() error {
	if c.Server.JWTSecret == "" {
		return ErrJWTSecretMissing
	}
	if c.Server.DatabaseDSN == "" {
		return ErrDatabaseDSNMissing
	}
	if c.Market.PollInterval <= 0 {
		return ErrInvalidPollPeriod
	}
	return nil
}

// IsAdminEmail - входит ли email в список администраторов
func (c ServerConfig) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Market: MarketConfig{
			PriceAPIAddr:   "https://api.coingecko.com",
			BscScanAPIAddr: "https://api.bscscan.com",
			PollInterval:   60 * time.Second,
			CacheTTL:       60 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
