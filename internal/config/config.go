package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env    string       `yaml:"env"`
	HTTP   HTTPConfig   `yaml:"http"`
	Log    LogConfig    `yaml:"log"`
	Redis  RedisConfig  `yaml:"redis"`
	Events EventsConfig `yaml:"events"`
	Mock   MockConfig   `yaml:"mock"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type EventsConfig struct {
	RedisEnabled bool   `yaml:"redis_enabled"`
	Channel      string `yaml:"channel"`
	BusBuffer    int    `yaml:"bus_buffer"`
}

// MockConfig tunes the simulated backend: per-operation latency and the
// random match outcome.
type MockConfig struct {
	Timezone         string      `yaml:"timezone"`
	LatencyEnabled   bool        `yaml:"latency_enabled"`
	MatchThreshold   float64     `yaml:"match_threshold"`
	CompatibilityMin int         `yaml:"compatibility_min"`
	CompatibilityMax int         `yaml:"compatibility_max"`
	Delays           DelayConfig `yaml:"delays"`
}

type DelayConfig struct {
	Login         time.Duration `yaml:"login"`
	Matches       time.Duration `yaml:"matches"`
	Discover      time.Duration `yaml:"discover"`
	Like          time.Duration `yaml:"like"`
	Pass          time.Duration `yaml:"pass"`
	Conversations time.Duration `yaml:"conversations"`
	Messages      time.Duration `yaml:"messages"`
	Send          time.Duration `yaml:"send"`
}

func Default() Config {
	return Config{
		Env: "dev",
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Log: LogConfig{Level: "debug", Encoding: "json"},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			DB:   0,
		},
		Events: EventsConfig{
			RedisEnabled: false,
			Channel:      "heartlink:events",
			BusBuffer:    64,
		},
		Mock: MockConfig{
			Timezone:         "UTC",
			LatencyEnabled:   true,
			MatchThreshold:   0.3,
			CompatibilityMin: 70,
			CompatibilityMax: 99,
			Delays: DelayConfig{
				Login:         500 * time.Millisecond,
				Matches:       800 * time.Millisecond,
				Discover:      500 * time.Millisecond,
				Like:          500 * time.Millisecond,
				Pass:          500 * time.Millisecond,
				Conversations: 500 * time.Millisecond,
				Messages:      500 * time.Millisecond,
				Send:          300 * time.Millisecond,
			},
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("http.addr is required")
	}
	if c.Mock.MatchThreshold <= 0 || c.Mock.MatchThreshold >= 1 {
		return fmt.Errorf("mock.match_threshold must be in (0,1), got %v", c.Mock.MatchThreshold)
	}
	if c.Mock.CompatibilityMin < 0 || c.Mock.CompatibilityMax > 100 || c.Mock.CompatibilityMin > c.Mock.CompatibilityMax {
		return fmt.Errorf("mock compatibility range %d-%d is outside 0-100", c.Mock.CompatibilityMin, c.Mock.CompatibilityMax)
	}
	if _, err := time.LoadLocation(c.Mock.Timezone); err != nil {
		return fmt.Errorf("mock.timezone: %w", err)
	}
	if c.Events.RedisEnabled && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required when events.redis_enabled is set")
	}
	return nil
}

func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal config yaml: %w", err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if err := overrideDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout); err != nil {
		return err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_ENCODING"); v != "" {
		cfg.Log.Encoding = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if err := overrideInt("REDIS_DB", &cfg.Redis.DB); err != nil {
		return err
	}
	if v := os.Getenv("REDIS_CHANNEL"); v != "" {
		cfg.Events.Channel = v
	}
	if err := overrideBool("EVENTS_REDIS_ENABLED", &cfg.Events.RedisEnabled); err != nil {
		return err
	}

	if v := os.Getenv("MOCK_TIMEZONE"); v != "" {
		cfg.Mock.Timezone = v
	}
	if err := overrideBool("MOCK_LATENCY_ENABLED", &cfg.Mock.LatencyEnabled); err != nil {
		return err
	}
	if err := overrideFloat("MOCK_MATCH_THRESHOLD", &cfg.Mock.MatchThreshold); err != nil {
		return err
	}
	delays := []struct {
		key    string
		target *time.Duration
	}{
		{"MOCK_LOGIN_DELAY", &cfg.Mock.Delays.Login},
		{"MOCK_MATCHES_DELAY", &cfg.Mock.Delays.Matches},
		{"MOCK_DISCOVER_DELAY", &cfg.Mock.Delays.Discover},
		{"MOCK_LIKE_DELAY", &cfg.Mock.Delays.Like},
		{"MOCK_PASS_DELAY", &cfg.Mock.Delays.Pass},
		{"MOCK_CONVERSATIONS_DELAY", &cfg.Mock.Delays.Conversations},
		{"MOCK_MESSAGES_DELAY", &cfg.Mock.Delays.Messages},
		{"MOCK_SEND_DELAY", &cfg.Mock.Delays.Send},
	}
	for _, d := range delays {
		if err := overrideDuration(d.key, d.target); err != nil {
			return err
		}
	}

	return nil
}

func overrideDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s duration: %w", key, err)
	}
	*target = d
	return nil
}

func overrideInt(key string, target *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s int: %w", key, err)
	}
	*target = n
	return nil
}

func overrideFloat(key string, target *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s float: %w", key, err)
	}
	*target = f
	return nil
}

func overrideBool(key string, target *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s bool: %w", key, err)
	}
	*target = b
	return nil
}
