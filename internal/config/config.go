package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network     string
	APIKey      string
	Out         string
	PGDSN       string
	HTTPTimeout time.Duration
	MaxPages    int
	LogLevel    string
}

// Load merges config file, environment variables, and flags into Config.
// The API key is typically supplied via the TAGGER_API_KEY environment
// variable rather than a flag.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAGGER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", "./data/tags.jsonl")
	v.SetDefault("http-timeout", 30*time.Second)
	v.SetDefault("max-pages", 10000)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Network:     v.GetString("network"),
		APIKey:      v.GetString("api-key"),
		Out:         v.GetString("out"),
		PGDSN:       v.GetString("pg-dsn"),
		HTTPTimeout: v.GetDuration("http-timeout"),
		MaxPages:    v.GetInt("max-pages"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
