// Package notes appends timestamped free-text entries to a plain-text file.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jchen89/taskdesk/internal/apperr"
	"github.com/jchen89/taskdesk/internal/model"
)

// Entry is one appended note.
type Entry struct {
	Timestamp string
	Tags      []string
	Text      string
}

// Append writes a note built from words to the file at path, creating
// parent directories as needed. Words starting with '#' are collected as
// tags on the header line; the rest join into the note body.
func Append(path string, words []string, now time.Time) (Entry, error) {
	if path == "" {
		return Entry{}, apperr.Validationf("notes file is not configured")
	}

	var tags, body []string
	for _, w := range words {
		if strings.HasPrefix(w, "#") {
			tags = append(tags, w)
		} else {
			body = append(body, w)
		}
	}
	e := Entry{
		Timestamp: now.Format(model.SecondLayout),
		Tags:      tags,
		Text:      strings.Join(body, " "),
	}

	header := "[" + e.Timestamp + "]"
	if len(tags) > 0 {
		header += " " + strings.Join(tags, " ")
	}
	content := fmt.Sprintf("\n\n%s\n%s\n", header, e.Text)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return e, fmt.Errorf("create notes dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return e, fmt.Errorf("open notes file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return e, fmt.Errorf("append note: %w", err)
	}
	return e, nil
}
