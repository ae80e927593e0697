package app

import (
	"os"
	"path/filepath"
	"testing"

	"barflow/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution != "1T" {
		t.Errorf("resolution = %q, want 1T", cfg.Resolution)
	}
	if !cfg.FFill || cfg.DropNA {
		t.Errorf("policy defaults = ffill %v dropna %v, want true/false", cfg.FFill, cfg.DropNA)
	}
	if cfg.Kind() != model.KindTick {
		t.Errorf("kind = %v, want tick", cfg.Kind())
	}
	if cfg.PollIntervalSec != 60 {
		t.Errorf("poll interval = %d, want 60", cfg.PollIntervalSec)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESOLUTION", "5T")
	t.Setenv("INPUT_KIND", "bar")
	t.Setenv("FFILL", "false")
	t.Setenv("DROPNA", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution != "5T" || cfg.Kind() != model.KindBar || cfg.FFill || !cfg.DropNA {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadKind(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_KIND", "quotes")
	if _, err := Load(); err == nil {
		t.Error("want validation error for bad input kind")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "resolution: 4H\ninput_kind: bar\npoll_interval_sec: 30\nlog_format: json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution != "4H" || cfg.Kind() != model.KindBar || cfg.PollIntervalSec != 30 || cfg.LogFormat != "json" {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	// env still wins over yaml
	t.Setenv("RESOLUTION", "1D")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution != "1D" {
		t.Errorf("env override over yaml not applied: %q", cfg.Resolution)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RESOLUTION", "TZ_OUT", "FFILL", "DROPNA", "INPUT",
		"INPUT_KIND", "OUTPUT", "POLL_URL", "POLL_INTERVAL_SEC", "REPORT_DIR",
		"LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
}
