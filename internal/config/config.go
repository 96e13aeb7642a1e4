package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env    string
		Locale string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Storage struct {
		Backend string // "file" or "postgres"
		Dir     string // file backend: directory for the state files
	} `mapstructure:"storage"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Telegram struct {
		Token  string
		ChatID int64 `mapstructure:"chat_id"`
	} `mapstructure:"telegram"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func Load(path string) (Config, error) {
	// .env is optional, ignore a missing file
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.locale", "es")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", "data")

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}

	switch c.Storage.Backend {
	case "file", "postgres":
	default:
		return c, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == "postgres" && c.Postgres.DSN == "" {
		return c, fmt.Errorf("postgres backend selected but postgres.dsn is empty")
	}
	return c, nil
}
