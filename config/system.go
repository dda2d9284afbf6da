// loads config.yaml + env overrides into one struct.

package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config mirrors the shape of our expected configuration. Viper unmarshals
// values from YAML and/or APP_* env variables into these fields.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"env"`       // dev|staging|prod
	HTTPPort string `mapstructure:"http_port"` // "3000"

	// Backend user API the dashboard proxies to.
	APIBaseURL string `mapstructure:"api_base_url"`

	// Listing defaults.
	PageSize int `mapstructure:"page_size"`

	// SessionTTL is the idle lifetime of a dashboard session, parsed with
	// time.ParseDuration (e.g. "30m").
	SessionTTL string `mapstructure:"session_ttl"`

	// Redis settings for the audit log; empty redis_addr disables it.
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db"`
	RedisPass   string `mapstructure:"redis_password"`
	AuditLogKey string `mapstructure:"audit_log_key"`

	// Parsed at load, not read from the file.
	SessionTTLDuration time.Duration `mapstructure:"-"`
}

func Load() *Config {
	v := viper.New()
	v.SetConfigName("config") // config.(yaml|yml|json...) in the project root
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("APP") // overrides like APP_HTTP_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults (safe for local)
	v.SetDefault("app_name", "fcg-users-dashboard")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", "3000")
	v.SetDefault("api_base_url", "http://localhost:8080/api/v1/")
	v.SetDefault("page_size", 50)
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("redis_addr", "") // audit log off unless configured
	v.SetDefault("redis_db", 0)
	v.SetDefault("audit_log_key", "logs:dashboard")

	// No config file is fine; defaults + env carry a local run.
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}

	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		log.Fatalf("[config] invalid session_ttl value: %v", err)
	}
	c.SessionTTLDuration = d

	return &c
}
