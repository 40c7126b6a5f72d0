package config

import (
	"os"
	"path/filepath"
	"testing"

	pkgconfig "github.com/jchen89/taskdesk/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.JobFile == "" || cfg.ScheduleFile == "" || cfg.NotesFile == "" {
		t.Errorf("defaults incomplete: %+v", cfg)
	}
	if filepath.Base(cfg.JobFile) != "job_list.json" {
		t.Errorf("job file = %q", cfg.JobFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.JobFile = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing job file should fail")
	}

	cfg = Default()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvJobFile, "/tmp/jobs.json")
	t.Setenv(EnvScheduleFile, "")

	cfg := Default()
	orig := cfg.ScheduleFile
	cfg.ApplyEnv()
	if cfg.JobFile != "/tmp/jobs.json" {
		t.Errorf("job file = %q", cfg.JobFile)
	}
	if cfg.ScheduleFile != orig {
		t.Errorf("empty env var must not override, got %q", cfg.ScheduleFile)
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigFile, "/etc/taskdesk.yaml")
	if got := DefaultPath(); got != "/etc/taskdesk.yaml" {
		t.Errorf("DefaultPath = %q", got)
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Setenv("TEST_DATA_DIR", "/data")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
job_file: ${TEST_DATA_DIR}/jobs.json
schedule_file: ${TEST_DATA_DIR}/schedules.json
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	found, err := pkgconfig.LoadIfExists(path, cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("file exists, found should be true")
	}
	if cfg.JobFile != "/data/jobs.json" {
		t.Errorf("env expansion failed, job file = %q", cfg.JobFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	// Fields absent from the file keep their defaults.
	if cfg.NotesFile == "" {
		t.Error("notes file default should survive")
	}
}

func TestLoadIfExistsMissing(t *testing.T) {
	cfg := Default()
	found, err := pkgconfig.LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), cfg)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if found {
		t.Error("found should be false")
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := pkgconfig.Load(path, cfg); err == nil {
		t.Error("invalid log level should fail validation on load")
	}
}
