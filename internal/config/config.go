package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Env      string
	Port     string
	LogLevel string
	// SeedFixture fills an empty store with the demo records at startup.
	SeedFixture bool
}

type StoreCfg struct {
	Driver         string // memory | postgres | redis
	ConnectTimeout time.Duration
}

type DBCfg struct{ DSN string }

type RedisCfg struct{ Addr, Prefix string }

type ClientCfg struct {
	APIURL  string
	Timeout time.Duration
}

type Cfg struct {
	App    AppCfg
	Store  StoreCfg
	DB     DBCfg
	Redis  RedisCfg
	Client ClientCfg
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

func Load() Cfg {
	// 1) Load .env into process env (if file exists); real env wins
	_ = godotenv.Load(".env")

	// 2) Read from env via viper
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "sandbox")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_FIXTURE", false)
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("REDIS_PREFIX", "items")
	v.SetDefault("API_URL", "http://localhost:8080/api/items")
	v.SetDefault("CLIENT_TIMEOUT_SEC", 30)

	return Cfg{
		App: AppCfg{
			Env:         v.GetString("APP_ENV"),
			Port:        v.GetString("APP_PORT"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			SeedFixture: v.GetBool("SEED_FIXTURE"),
		},
		Store: StoreCfg{
			Driver:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		DB:    DBCfg{DSN: v.GetString("DB_DSN")},
		Redis: RedisCfg{Addr: v.GetString("REDIS_ADDR"), Prefix: v.GetString("REDIS_PREFIX")},
		Client: ClientCfg{
			APIURL:  v.GetString("API_URL"),
			Timeout: time.Duration(v.GetInt("CLIENT_TIMEOUT_SEC")) * time.Second,
		},
	}
}

// Validate checks the settings the API server needs.
func (c Cfg) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for STORE_DRIVER=%s", c.Store.Driver)
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for STORE_DRIVER=%s", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want memory, postgres or redis)", c.Store.Driver)
	}
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if _, err := zerolog.ParseLevel(c.App.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c Cfg) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.App.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
