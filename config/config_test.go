package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/bootkit/errors"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Name:    "test-svc",
		Kind:    "app",
		BaseDir: t.TempDir(),
		Units:   []string{"db", "cache"},
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig(t)
	cfg.ApplyDefaults()

	if cfg.WatchdogDelay != DefaultWatchdogDelay {
		t.Errorf("expected default watchdog delay %v, got %v", DefaultWatchdogDelay, cfg.WatchdogDelay)
	}
	if cfg.Logging.ServiceName != "test-svc" {
		t.Errorf("expected logging service name propagated, got %q", cfg.Logging.ServiceName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults applied, got level %q", cfg.Logging.Level)
	}
}

func TestValidateOK(t *testing.T) {
	cfg := validConfig(t)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingKind(t *testing.T) {
	cfg := validConfig(t)
	cfg.Kind = ""
	cfg.ApplyDefaults()
	err := cfg.Validate()
	if !errors.IsCode(err, errors.ErrCodeConfigurationInvalid) {
		t.Fatalf("expected CONFIGURATION_INVALID, got %v", err)
	}
}

func TestValidateBadKind(t *testing.T) {
	cfg := validConfig(t)
	cfg.Kind = "worker"
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestValidateBadBaseDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.BaseDir = filepath.Join(cfg.BaseDir, "does-not-exist")
	cfg.ApplyDefaults()
	err := cfg.Validate()
	if !errors.IsCode(err, errors.ErrCodeConfigurationInvalid) {
		t.Fatalf("expected CONFIGURATION_INVALID, got %v", err)
	}

	// A file is not a valid base dir either.
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.BaseDir = file
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for file base_dir")
	}
}

func TestValidateDuplicateUnits(t *testing.T) {
	cfg := validConfig(t)
	cfg.Units = []string{"db", "db"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate unit paths")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	unitDir := filepath.Join(dir, "units")
	if err := os.Mkdir(unitDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgFile := filepath.Join(dir, "config.yml")
	yaml := "name: loaded-svc\nkind: agent\nbase_dir: " + unitDir + "\nwatchdog_delay: 2s\nunits:\n  - db\n  - api\n"
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := Load("loaded-svc", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "loaded-svc" || cfg.Kind != "agent" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.WatchdogDelay != 2*time.Second {
		t.Errorf("expected 2s watchdog delay, got %v", cfg.WatchdogDelay)
	}
	if len(cfg.Units) != 2 || cfg.Units[0] != "db" || cfg.Units[1] != "api" {
		t.Errorf("expected ordered units [db api], got %v", cfg.Units)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(cfgFile, []byte("name: file-name\nkind: app\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("NAME", "env-name")
	var cfg Config
	if err := Load("file-name", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "env-name" {
		t.Errorf("expected env override, got %q", cfg.Name)
	}
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	var cfg Config
	err := Load("absent-svc", &cfg, WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	if err != nil {
		t.Fatalf("expected missing config file to be skipped, got %v", err)
	}
}
