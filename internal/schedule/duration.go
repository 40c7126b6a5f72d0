package schedule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jchen89/taskdesk/internal/apperr"
)

var (
	hoursRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)$`)
	minutesRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:minutes?|mins?|m)$`)
)

// ParseExtension parses a human duration like "1.5 hours", "90 minutes",
// or "2h" into minutes. A bare number is taken as hours.
func ParseExtension(input string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, apperr.Validationf("duration must not be empty")
	}
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v * 60, nil
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v * 60, nil
	}
	return 0, apperr.Validationf("cannot parse duration %q (try \"1.5 hours\" or \"30 minutes\")", input)
}
