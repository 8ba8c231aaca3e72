package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DataMode != DataModeMemory {
		t.Fatalf("DataMode = %q, want %q", cfg.DataMode, DataModeMemory)
	}
	if cfg.UploadTimeout != 30*time.Second {
		t.Fatalf("UploadTimeout = %s, want 30s", cfg.UploadTimeout)
	}
	if cfg.UsesUpstream() {
		t.Fatal("UsesUpstream() = true with no UPSTREAM_URL")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("UPSTREAM_URL", "https://api.example.org/")
	v.Set("DATA_MODE", "Database")
	v.Set("CORS_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("ASSISTANT_DELAY_MS", 250)

	cfg := fromViper(v)

	if cfg.UpstreamURL != "https://api.example.org" {
		t.Fatalf("UpstreamURL = %q, want trailing slash trimmed", cfg.UpstreamURL)
	}
	if !cfg.UsesDatabase() {
		t.Fatal("UsesDatabase() = false, want true")
	}
	if got := len(cfg.CORSOrigins); got != 2 {
		t.Fatalf("len(CORSOrigins) = %d, want 2", got)
	}
	if cfg.AssistantDelay != 250*time.Millisecond {
		t.Fatalf("AssistantDelay = %s, want 250ms", cfg.AssistantDelay)
	}
}
