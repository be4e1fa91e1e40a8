package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort               = "8080"
	defaultJWTSecret          = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer          = "tax-ledger-app"
	defaultFixedContributions = "53658"
	defaultSafeLoadThreshold  = "6"
	defaultImportRateLimit    = "10-M"
	defaultMaxUploadBytes     = 10 << 20
	defaultMigrationsPath     = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string

	JWTSecret string
	JWTIssuer string

	AllowedOrigins  []string
	ImportRateLimit string // ulule/limiter formatted rate, e.g. "10-M"
	MaxUploadBytes  int64

	// FixedContributions is the statutory fixed yearly contribution amount.
	FixedContributions decimal.Decimal
	// SafeLoadThreshold is the load ratio, in percent, above which a tax
	// summary is flagged as elevated.
	SafeLoadThreshold decimal.Decimal

	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("IMPORT_RATE_LIMIT", defaultImportRateLimit)
	v.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	v.SetDefault("FIXED_CONTRIBUTIONS", defaultFixedContributions)
	v.SetDefault("SAFE_LOAD_THRESHOLD", defaultSafeLoadThreshold)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)

	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		ImportRateLimit: v.GetString("IMPORT_RATE_LIMIT"),
		MaxUploadBytes:  v.GetInt64("MAX_UPLOAD_BYTES"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.MaxUploadBytes <= 0 {
		log.Printf("Warning: Invalid value for MAX_UPLOAD_BYTES (%d). Defaulting to %d.\n", cfg.MaxUploadBytes, defaultMaxUploadBytes)
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.ImportRateLimit == "" {
		cfg.ImportRateLimit = defaultImportRateLimit
	}

	for _, origin := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	cfg.FixedContributions = decimalOrDefault(v, "FIXED_CONTRIBUTIONS", defaultFixedContributions)
	cfg.SafeLoadThreshold = decimalOrDefault(v, "SAFE_LOAD_THRESHOLD", defaultSafeLoadThreshold)

	return cfg
}

func decimalOrDefault(v *viper.Viper, key, fallback string) decimal.Decimal {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return decimal.RequireFromString(fallback)
	}
	return d
}
