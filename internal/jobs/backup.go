package jobs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jchen89/taskdesk/internal/apperr"
)

// BackupPrefix is the filename prefix of backup artifacts.
const BackupPrefix = "job_list_backup_"

// Backup copies the persisted job-list file verbatim into destDir, creating
// the directory if needed. An empty destDir falls back to a "backups"
// sibling of the job file. Returns the backup path.
func (r *Registry) Backup(destDir string) (string, error) {
	if destDir == "" {
		destDir = filepath.Join(filepath.Dir(r.store.Path()), "backups")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	src, err := os.ReadFile(r.store.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperr.Validationf("job list file does not exist: %s", r.store.Path())
		}
		return "", fmt.Errorf("read job list: %w", err)
	}

	name := fmt.Sprintf("%s%s.json", BackupPrefix, r.now().Format("20060102_150405"))
	dst := filepath.Join(destDir, name)
	if err := os.WriteFile(dst, src, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return dst, nil
}
