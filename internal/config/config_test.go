package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
events:
  channel: dating:events
mock:
  match_threshold: 0.5
  delays:
    login: 50ms
    send: 100ms
  latency_enabled: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Events.Channel != "dating:events" {
		t.Fatalf("unexpected events channel: %s", cfg.Events.Channel)
	}
	if cfg.Mock.MatchThreshold != 0.5 {
		t.Fatalf("unexpected match threshold: %v", cfg.Mock.MatchThreshold)
	}
	if cfg.Mock.Delays.Login != 50*time.Millisecond {
		t.Fatalf("unexpected login delay: %s", cfg.Mock.Delays.Login)
	}
	if cfg.Mock.LatencyEnabled {
		t.Fatalf("latency should be disabled by yaml")
	}
	if cfg.Mock.Delays.Send != 100*time.Millisecond {
		t.Fatalf("unexpected send delay: %s", cfg.Mock.Delays.Send)
	}

	if cfg.Mock.Delays.Matches != 800*time.Millisecond {
		t.Fatalf("matches delay default should stay 800ms, got %s", cfg.Mock.Delays.Matches)
	}
	if cfg.Mock.CompatibilityMin != 70 || cfg.Mock.CompatibilityMax != 99 {
		t.Fatalf("unexpected compatibility defaults: %d-%d", cfg.Mock.CompatibilityMin, cfg.Mock.CompatibilityMax)
	}
	if cfg.Log.Encoding != "json" {
		t.Fatalf("log encoding default should stay json, got %s", cfg.Log.Encoding)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	want := Default()
	if cfg.HTTP.Addr != want.HTTP.Addr {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Mock.Delays != want.Mock.Delays {
		t.Fatalf("unexpected delays: %+v", cfg.Mock.Delays)
	}
	if cfg.Events.RedisEnabled {
		t.Fatalf("redis events must be disabled by default")
	}
	if cfg.Events.Channel != "heartlink:events" {
		t.Fatalf("unexpected default channel: %s", cfg.Events.Channel)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_CHANNEL", "custom")
	t.Setenv("EVENTS_REDIS_ENABLED", "true")
	t.Setenv("MOCK_MATCH_THRESHOLD", "0.9")
	t.Setenv("MOCK_LIKE_DELAY", "1s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7000" || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected http/log overrides: %s %s", cfg.HTTP.Addr, cfg.Log.Level)
	}
	if cfg.Redis.DB != 3 || cfg.Events.Channel != "custom" || !cfg.Events.RedisEnabled {
		t.Fatalf("unexpected redis overrides: %+v %+v", cfg.Redis, cfg.Events)
	}
	if cfg.Mock.MatchThreshold != 0.9 {
		t.Fatalf("unexpected threshold: %v", cfg.Mock.MatchThreshold)
	}
	if cfg.Mock.Delays.Like != time.Second {
		t.Fatalf("unexpected like delay: %s", cfg.Mock.Delays.Like)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "MOCK_SEND_DELAY", val: "soon"},
		{name: "bad int", key: "REDIS_DB", val: "one"},
		{name: "bad bool", key: "EVENTS_REDIS_ENABLED", val: "maybe"},
		{name: "threshold out of range", key: "MOCK_MATCH_THRESHOLD", val: "1.5"},
		{name: "unknown timezone", key: "MOCK_TIMEZONE", val: "Mars/Olympus"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tc.key, tc.val)

			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestValidateRejectsInvertedCompatibilityRange(t *testing.T) {
	cfg := Default()
	cfg.Mock.CompatibilityMin = 90
	cfg.Mock.CompatibilityMax = 80

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for inverted compatibility range")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"LOG_ENCODING",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"REDIS_CHANNEL",
		"EVENTS_REDIS_ENABLED",
		"MOCK_TIMEZONE",
		"MOCK_LATENCY_ENABLED",
		"MOCK_MATCH_THRESHOLD",
		"MOCK_LOGIN_DELAY",
		"MOCK_MATCHES_DELAY",
		"MOCK_DISCOVER_DELAY",
		"MOCK_LIKE_DELAY",
		"MOCK_PASS_DELAY",
		"MOCK_CONVERSATIONS_DELAY",
		"MOCK_MESSAGES_DELAY",
		"MOCK_SEND_DELAY",
	} {
		t.Setenv(key, "")
	}
}
