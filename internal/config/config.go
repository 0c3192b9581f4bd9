package config

import (
	"strings"

	"github.com/spf13/viper"
)

type App struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Database struct {
	DSN         string `mapstructure:"dsn"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxIdle     int    `mapstructure:"max_idle"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	EnableTLS   bool   `mapstructure:"enable_tls"`
}

type Redis struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	PoolSize  int    `mapstructure:"pool_size"`
	EnableTLS bool   `mapstructure:"enable_tls"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OtlpEndpoint string `mapstructure:"otlp_endpoint"`
}

// Identity describes the fixed current user. There is no login flow; every
// request runs as this identity until a real identity system replaces it.
type Identity struct {
	UserID   string `mapstructure:"user_id"`
	UserName string `mapstructure:"user_name"`
}

type Config struct {
	App       App       `mapstructure:"app"`
	Log       Log       `mapstructure:"log"`
	Database  Database  `mapstructure:"database"`
	Redis     Redis     `mapstructure:"redis"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	Identity  Identity  `mapstructure:"identity"`
}

// Load reads configuration from config.yaml (if present) and COLLABHUB_*
// environment variables, with sane defaults for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "collabhub-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("log.level", "info")

	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=collabhub port=5432 sslmode=disable")
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.enable_tls", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.enable_tls", false)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "")

	v.SetDefault("identity.user_id", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("identity.user_name", "Sarah Chen")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("COLLABHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
