package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Scheduler       SchedulerConfig      `mapstructure:"scheduler"`
}

type ServiceConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type ExternalClientConfig struct {
	MarketData MarketDataConfig `mapstructure:"marketData"`
}

type MarketDataConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

type SchedulerConfig struct {
	// SnapshotCron is a standard cron spec; the default fires once daily at 16:00.
	SnapshotCron string `mapstructure:"snapshotCron"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	// DATABASE_URL always wins over the file-based settings
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Databases.SQL.ConnectionString = dsn
	}
	if cfg.Scheduler.SnapshotCron == "" {
		cfg.Scheduler.SnapshotCron = "0 16 * * *"
	}
	return &cfg, nil
}
