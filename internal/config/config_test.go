package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Extraction: ExtractionConfig{
			Provider: ProviderConfig{
				Name:   "openai",
				APIKey: "test-key",
			},
		},
	}
}

func TestValidate_InvalidBudgetAction(t *testing.T) {
	cfg := validConfig()
	cfg.Extraction.Budget = BudgetConfig{
		DailyTokenLimit: 1000000,
		Action:          "invalid_action",
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid budget action")
	}

	expected := `extraction.budget.action must be "warn" or "reject", got "invalid_action"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidBudgetActions(t *testing.T) {
	validActions := []string{"", "warn", "reject"}

	for _, action := range validActions {
		t.Run("action="+action, func(t *testing.T) {
			cfg := validConfig()
			cfg.Extraction.Budget.Action = action

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid action %q: %v", action, err)
			}
		})
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Extraction.Provider.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected read timeout default 10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Cache.TTLHours != 24 {
		t.Errorf("expected cache TTL default 24h, got %d", cfg.Cache.TTLHours)
	}
	if cfg.Extraction.MaxKeywords != 20 {
		t.Errorf("expected max keywords default 20, got %d", cfg.Extraction.MaxKeywords)
	}
	if cfg.Analysis.MaxTextLength != 50000 {
		t.Errorf("expected max text length default 50000, got %d", cfg.Analysis.MaxTextLength)
	}
}

func TestCacheConfig_Enabled(t *testing.T) {
	if (CacheConfig{}).Enabled() {
		t.Error("empty addrs must disable the cache")
	}
	if !(CacheConfig{Addrs: []string{"localhost:6379"}}).Enabled() {
		t.Error("configured addrs must enable the cache")
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("SEO_TEST_KEY", "secret")
	defer os.Unsetenv("SEO_TEST_KEY")

	tests := []struct {
		in   string
		want string
	}{
		{"api_key: ${SEO_TEST_KEY}", "api_key: secret"},
		{"port: ${SEO_TEST_MISSING:-8080}", "port: 8080"},
		{"plain: value", "plain: value"},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
