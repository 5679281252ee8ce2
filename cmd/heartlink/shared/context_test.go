package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigReadsEnvFile(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	// godotenv skips variables that are already set, even to "".
	t.Setenv("HTTP_ADDR", "")
	if err := os.Unsetenv("HTTP_ADDR"); err != nil {
		t.Fatalf("unset HTTP_ADDR: %v", err)
	}

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("HTTP_ADDR=:9191\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	ctx := &Context{ConfigPath: filepath.Join(dir, "missing.yaml"), EnvFile: envFile}
	cfg, err := ctx.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTP.Addr != ":9191" {
		t.Fatalf("unexpected addr from env file: %s", cfg.HTTP.Addr)
	}
}

func TestLoadConfigToleratesMissingEnvFile(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	t.Setenv("HTTP_ADDR", "")

	dir := t.TempDir()
	ctx := &Context{ConfigPath: filepath.Join(dir, "missing.yaml"), EnvFile: filepath.Join(dir, "missing.env")}
	if _, err := ctx.LoadConfig(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestLoadConfigEnvironmentWinsOverEnvFile(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	t.Setenv("LOG_LEVEL", "warn")

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("LOG_LEVEL=error\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	ctx := &Context{ConfigPath: filepath.Join(dir, "missing.yaml"), EnvFile: envFile}
	cfg, err := ctx.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("process env should win, got %s", cfg.Log.Level)
	}
}
