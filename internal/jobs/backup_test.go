package jobs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jchen89/taskdesk/internal/apperr"
)

func TestBackup(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A"},
	})

	dir := t.TempDir()
	path, err := r.Backup(dir)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, BackupPrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("backup name = %q", name)
	}
	if name != BackupPrefix+"20250601_100000.json" {
		t.Errorf("timestamped name = %q", name)
	}

	src, err := os.ReadFile(r.store.Path())
	if err != nil {
		t.Fatal(err)
	}
	dst, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != string(dst) {
		t.Error("backup should be a verbatim copy")
	}
}

func TestBackupDefaultDir(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A"},
	})

	path, err := r.Backup("")
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	want := filepath.Join(filepath.Dir(r.store.Path()), "backups")
	if filepath.Dir(path) != want {
		t.Errorf("default dir = %q, want %q", filepath.Dir(path), want)
	}
}

func TestBackupMissingSource(t *testing.T) {
	r := newTestRegistry(t) // nothing saved yet, job file absent
	if _, err := r.Backup(t.TempDir()); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for missing source, got %v", err)
	}
}
