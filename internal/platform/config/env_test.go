package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"PORTAL_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PORTAL_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLookupFirstPrefersEarlierNames(t *testing.T) {
	t.Parallel()

	values := map[string]string{"B": "second", "C": "third", "A": ""}
	lookup := func(name string) (string, bool) {
		value, ok := values[name]
		return value, ok
	}
	if got := LookupFirst(lookup, "A", "B", "C"); got != "second" {
		t.Fatalf("LookupFirst() = %q, want %q", got, "second")
	}
	if got := LookupFirst(lookup, "missing"); got != "" {
		t.Fatalf("LookupFirst(missing) = %q, want empty", got)
	}
}
