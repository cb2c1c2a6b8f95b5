package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 环境变量未设置时，应该返回默认值
	_ = os.Unsetenv(key)
	if got := getEnv(key, "8080"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}

	// 环境变量设置后，应优先返回环境变量
	if err := os.Setenv(key, "9090"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "8080"); got != "9090" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "9090")
	}
}

func TestSplitListTrimsAndSkipsEmpty(t *testing.T) {
	got := splitList(" https://a.example , ,https://b.example,")
	if len(got) != 2 {
		t.Fatalf("expected 2 origins, got %d (%v)", len(got), got)
	}
	if got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", got)
	}
}

func TestLoadReadsOriginsAndCountry(t *testing.T) {
	_ = os.Setenv("APP_PORT", "1234")
	_ = os.Setenv("ALLOWED_ORIGINS", "https://risk.example,https://staging.risk.example")
	_ = os.Setenv("COUNTRY_NAME", "South Africa")
	defer func() {
		_ = os.Unsetenv("APP_PORT")
		_ = os.Unsetenv("ALLOWED_ORIGINS")
		_ = os.Unsetenv("COUNTRY_NAME")
	}()

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://risk.example" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.CountryName != "South Africa" {
		t.Fatalf("CountryName = %q", cfg.CountryName)
	}
}
