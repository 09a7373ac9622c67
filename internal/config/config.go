package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application settings, read from environment
// variables with an optional .env file underneath.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	GRPC     GRPCConfig
	Store    StoreConfig
	Purchase PurchaseConfig
}

type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

type HTTPConfig struct {
	Addr string
}

type GRPCConfig struct {
	Addr string
}

// StoreConfig selects and configures the storage backend.
type StoreConfig struct {
	// Backend is one of mysql, redis, memory.
	Backend string
	// Timeout bounds each individual store call.
	Timeout   time.Duration
	MySQLDSN  string
	RedisAddr string
}

type PurchaseConfig struct {
	// MaxQuantity caps units per transaction.
	MaxQuantity int
	// MaxRetries bounds the optimistic-concurrency retry loop.
	MaxRetries int
	// SeedTickets, when set, creates records at boot. Format:
	// id:type:price:quantity, comma separated. Dev/demo only.
	SeedTickets string
}

// Load reads configuration from env vars (and .env if present).
// Env vars always win over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "ticket-inventory")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GRPC_ADDR", ":50051")
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("STORE_TIMEOUT", "3s")
	v.SetDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/tickets?parseTime=true")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("MAX_PURCHASE_QUANTITY", 100)
	v.SetDefault("PURCHASE_MAX_RETRIES", 4)
	v.SetDefault("SEED_TICKETS", "")

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Addr: v.GetString("HTTP_ADDR"),
		},
		GRPC: GRPCConfig{
			Addr: v.GetString("GRPC_ADDR"),
		},
		Store: StoreConfig{
			Backend:   v.GetString("STORE_BACKEND"),
			Timeout:   v.GetDuration("STORE_TIMEOUT"),
			MySQLDSN:  v.GetString("MYSQL_DSN"),
			RedisAddr: v.GetString("REDIS_ADDR"),
		},
		Purchase: PurchaseConfig{
			MaxQuantity: v.GetInt("MAX_PURCHASE_QUANTITY"),
			MaxRetries:  v.GetInt("PURCHASE_MAX_RETRIES"),
			SeedTickets: v.GetString("SEED_TICKETS"),
		},
	}

	return cfg, nil
}
