// Package cli implements the taskdesk CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/config"
	"github.com/jchen89/taskdesk/internal/jobs"
	"github.com/jchen89/taskdesk/internal/model"
	"github.com/jchen89/taskdesk/internal/schedule"
	pkgconfig "github.com/jchen89/taskdesk/pkg/config"
)

var (
	configPath   string
	jobFile      string
	scheduleFile string
	verbose      bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "taskdesk",
	Short: "Personal job list and schedule toolkit",
	Long:  "Imports shared-link CSV exports into a deduplicated job list and manages a time-boxed task schedule. JSON-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $TASKDESK_CONFIG or ~/.taskdesk/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&jobFile, "job-file", "", "Job list file (default from config)")
	RootCmd.PersistentFlags().StringVar(&scheduleFile, "schedule-file", "", "Schedule file (default from config)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// loadConfig resolves the effective configuration: flags over TASKDESK_*
// env over the YAML config file over built-in defaults.
func loadConfig() *config.Config {
	cfg := config.Default()

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := pkgconfig.LoadIfExists(path, cfg); err != nil {
		exitErr("load config", err)
	}
	cfg.ApplyEnv()

	if jobFile != "" {
		cfg.JobFile = jobFile
	}
	if scheduleFile != "" {
		cfg.ScheduleFile = scheduleFile
	}
	if err := cfg.Validate(); err != nil {
		exitErr("config", err)
	}
	return cfg
}

func logger(cfg *config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		level = l
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func openJobs() (*jobs.Registry, *config.Config) {
	cfg := loadConfig()
	return jobs.Open(cfg.JobFile, logger(cfg)), cfg
}

func openSchedules() (*schedule.Registry, *config.Config) {
	cfg := loadConfig()
	return schedule.Open(cfg.ScheduleFile, logger(cfg)), cfg
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func fail(format string, args ...any) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
	os.Exit(1)
}

func rule(title string) {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println(title)
	fmt.Println(line)
}

func thinRule() {
	fmt.Println(strings.Repeat("-", 60))
}

// printField prints a labeled value, indenting continuation lines when the
// value embeds newlines. Empty values are skipped.
func printField(label, value string) {
	if value == "" {
		return
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		fmt.Printf("    %s: %s\n", label, value)
		return
	}
	fmt.Printf("    %s:\n", label)
	for _, l := range lines {
		fmt.Printf("        %s\n", l)
	}
}

func printJob(index string, job model.Job) {
	title := job.Title()
	if title == "" {
		title = "(untitled)"
	}
	marker := ""
	if job.Deleted() {
		marker = " [deleted]"
	}
	fmt.Printf("\n[%s] %s%s\n", index, title, marker)
	printField("link", job.Link())
	printField("time", job.Timestamp())
	printField("tags", job.Tags())
	if at, ok := job[model.FieldDeletedAt].(string); ok {
		printField("deleted at", at)
	}
	printField("summary", job.Summary())
}

func printSchedule(s *model.Schedule) {
	marker := ""
	if s.Deleted {
		marker = " [deleted]"
	}
	fmt.Printf("\n[%d] %s%s\n", s.ID, s.Task, marker)
	fmt.Printf("    window: %s ~ %s\n", s.Start, s.End)
	fmt.Printf("    status: %s\n", s.Status)
	printField("description", s.Description)
	printField("value", s.ValueNote)
	printField("created", s.CreatedAt)
}
