package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.Admin.Email == "" || cfg.Admin.PasswordSHA256 == "" || cfg.Admin.PathSegment == "" {
		t.Fatalf("admin defaults missing: %+v", cfg.Admin)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("unexpected session TTL: %v", cfg.Session.TTL)
	}
	if cfg.Content.FilePath == "" || cfg.Assets.Dir == "" || cfg.Assets.DefaultLogo == "" {
		t.Fatalf("content/asset defaults missing: %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	os.Setenv("ADMIN_PATH", "secret-42")
	os.Setenv("SESSION_TTL_MINUTES", "30")
	os.Setenv("CONTENT_FILE", "/tmp/content.json")
	defer func() {
		os.Unsetenv("ADMIN_PATH")
		os.Unsetenv("SESSION_TTL_MINUTES")
		os.Unsetenv("CONTENT_FILE")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Admin.PathSegment != "secret-42" {
		t.Fatalf("ADMIN_PATH override not applied: %q", cfg.Admin.PathSegment)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("SESSION_TTL_MINUTES override not applied: %v", cfg.Session.TTL)
	}
	if cfg.Content.FilePath != "/tmp/content.json" {
		t.Fatalf("CONTENT_FILE override not applied: %q", cfg.Content.FilePath)
	}
}
