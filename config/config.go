// Package config loads service settings from defaults, an optional YAML
// file, a .env file and SIMULATOR_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	RateLimit struct {
		Capacity int           `mapstructure:"capacity"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"ratelimit"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	TaxTables struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"tax_tables"`
	Simulator struct {
		ScheduleMonths int `mapstructure:"schedule_months"`
	} `mapstructure:"simulator"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("ratelimit.capacity", 60)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("tax_tables.path", "")
	v.SetDefault("simulator.schedule_months", 12)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load builds a Config. path may be empty, in which case only defaults and
// the environment apply.
func Load(v *viper.Viper, path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	setDefaults(v)
	v.SetEnvPrefix("SIMULATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all numeric settings are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 ||
		c.Server.IdleTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.RateLimit.Capacity <= 0 {
		return errors.New("ratelimit.capacity must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("ratelimit.window must be positive")
	}
	if c.Simulator.ScheduleMonths <= 0 || c.Simulator.ScheduleMonths > 600 {
		return errors.New("simulator.schedule_months must be between 1 and 600")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
