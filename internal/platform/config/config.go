package config

import (
	"hash/fnv"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	DBMaxConns     int32
	MigrationsPath string
	Port           string
	IsProduction   bool
	JWTSecret      string

	// AccountMappingFile points at the YAML category -> account mapping. Empty uses the built-in defaults.
	AccountMappingFile string

	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	IdempotencyLockTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	RateLimit          string
	CORSAllowedOrigins []string
	// SnowflakeWorkerID must differ between running instances; unset, it is derived from the hostname.
	SnowflakeWorkerID  int64

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCOUNT_MAPPING_FILE", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_LOCK_TTL", "30s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "finance-events")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		DBMaxConns:         v.GetInt32("DB_MAX_CONNS"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		AccountMappingFile: v.GetString("ACCOUNT_MAPPING_FILE"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		KafkaBrokers:       splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:         v.GetString("KAFKA_TOPIC"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		SnowflakeWorkerID:  v.GetInt64("SNOWFLAKE_WORKER_ID"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	lockTTLStr := v.GetString("IDEMPOTENCY_LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for IDEMPOTENCY_LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL)
	}
	cfg.IdempotencyLockTTL = lockTTL

	if !v.IsSet("SNOWFLAKE_WORKER_ID") {
		cfg.SnowflakeWorkerID = workerIDFromHost()
		log.Printf("Warning: SNOWFLAKE_WORKER_ID not set. Derived %d from hostname.\n", cfg.SnowflakeWorkerID)
	} else if cfg.SnowflakeWorkerID < 0 || cfg.SnowflakeWorkerID > maxWorkerID {
		log.Printf("Warning: SNOWFLAKE_WORKER_ID %d out of range. Deriving from hostname.\n", cfg.SnowflakeWorkerID)
		cfg.SnowflakeWorkerID = workerIDFromHost()
	}

	return cfg
}

const maxWorkerID = 1023

func workerIDFromHost() int64 {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return 1
	}
	return hostWorkerID(host)
}

// hostWorkerID folds a hostname into the snowflake worker id range.
func hostWorkerID(host string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	return int64(h.Sum32() % (maxWorkerID + 1))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
