// Package config resolves where the toolkit keeps its data files.
package config

import (
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Env overrides, checked after flags and before the config file.
const (
	EnvJobFile      = "TASKDESK_JOB_FILE"
	EnvScheduleFile = "TASKDESK_SCHEDULE_FILE"
	EnvNotesFile    = "TASKDESK_NOTES_FILE"
	EnvConfigFile   = "TASKDESK_CONFIG"
)

// Config holds the data-file locations and logging preference.
type Config struct {
	JobFile      string `yaml:"job_file"`
	ScheduleFile string `yaml:"schedule_file"`
	NotesFile    string `yaml:"notes_file"`
	BackupDir    string `yaml:"backup_dir"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration rooted in ~/.taskdesk.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".taskdesk")
	return &Config{
		JobFile:      filepath.Join(base, "job_list.json"),
		ScheduleFile: filepath.Join(base, "schedules.json"),
		NotesFile:    filepath.Join(base, "notes.txt"),
		LogLevel:     "warn",
	}
}

// DefaultPath is where the config file lives unless overridden.
func DefaultPath() string {
	if env := os.Getenv(EnvConfigFile); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".taskdesk", "config.yaml")
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.JobFile, validation.Required),
		validation.Field(&c.ScheduleFile, validation.Required),
		validation.Field(&c.LogLevel, validation.In("", "trace", "debug", "info", "warn", "error")),
	)
}

// ApplyEnv layers TASKDESK_* overrides on top of the loaded values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvJobFile); v != "" {
		c.JobFile = v
	}
	if v := os.Getenv(EnvScheduleFile); v != "" {
		c.ScheduleFile = v
	}
	if v := os.Getenv(EnvNotesFile); v != "" {
		c.NotesFile = v
	}
}
