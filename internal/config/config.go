package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Source   SourceConfig   `mapstructure:"source"`
	Database DatabaseConfig `mapstructure:"database"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type BatchConfig struct {
	WordList  string `mapstructure:"word_list" validate:"required"`
	StartWord string `mapstructure:"start_word"`
	// FlushEvery is the number of merged words between writes of the store file.
	FlushEvery int `mapstructure:"flush_every" validate:"min=1"`
}

type SourceConfig struct {
	BaseURL        string            `mapstructure:"base_url" validate:"required,url"`
	Headers        map[string]string `mapstructure:"headers" validate:"header_names"`
	Timeout        time.Duration     `mapstructure:"timeout" validate:"min=0"`
	RetryAttempts  uint              `mapstructure:"retry_attempts"`
	RetryDelay     time.Duration     `mapstructure:"retry_delay" validate:"min=0"`
	CacheDirectory string            `mapstructure:"cache_directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

const DefaultBaseURL = "https://www.wordreference.com/definicion"

// DefaultSourceHeaders returns the request headers WordReference needs to serve
// the Spanish definition page instead of a locale redirect.
func DefaultSourceHeaders() map[string]string {
	return map[string]string{
		"accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"accept-language": "es-ES,es;q=0.9",
		"cookie":          "llang=esesi",
		"user-agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	}
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
		v.AddConfigPath("$HOME/.config/wordharvest")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("store.path", "dictionary.json")
	v.SetDefault("batch.word_list", "diccionario_espanol.txt")
	v.SetDefault("batch.start_word", "")
	v.SetDefault("batch.flush_every", 1)
	v.SetDefault("source.base_url", DefaultBaseURL)
	v.SetDefault("source.headers", DefaultSourceHeaders())
	v.SetDefault("source.timeout", time.Duration(0))
	v.SetDefault("source.retry_attempts", 0)
	v.SetDefault("source.retry_delay", time.Second)
	// Page cache is disabled unless a directory is configured
	v.SetDefault("source.cache_directory", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
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
