// Package config loads application configuration from YAML files and
// environment variables.
package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Client   ClientConfig   `mapstructure:"client"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Review   ReviewConfig   `mapstructure:"review"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"gt=0,lte=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// ClientConfig configures the CLI's HTTP client for a running server.
type ClientConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type JobsConfig struct {
	// StreakReconcileCron is a cron expression for the nightly streak
	// reconciliation sweep. Empty disables the job.
	StreakReconcileCron string `mapstructure:"streak_reconcile_cron"`
}

// ReviewConfig holds the activity credit awarded per submitted review.
type ReviewConfig struct {
	MinutesPerCard int `mapstructure:"minutes_per_card" validate:"gte=0"`
	PointsPerCard  int `mapstructure:"points_per_card" validate:"gte=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/linguatrack")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("env", "local")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "linguatrack")
	v.SetDefault("database.username", "linguatrack")
	v.SetDefault("client.base_url", "http://localhost:8080")
	v.SetDefault("client.timeout_seconds", 10)
	v.SetDefault("jobs.streak_reconcile_cron", "30 3 * * *")
	v.SetDefault("review.minutes_per_card", 2)
	v.SetDefault("review.points_per_card", 5)

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
