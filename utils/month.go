package utils

import (
	"fmt"
	"strings"
	"time"
)

// Event dates are stored as human-readable labels ("September 2025"). The
// admin form edits them through an HTML month input, so the API round-trips
// the label to a machine YYYY-MM value on a best-effort basis. The conversion
// is lossy: any label that is not a recognizable "Month Year" yields "".

// MonthToLabel turns "2025-09" into "September 2025". Returns "" for input
// that is not a valid YYYY-MM month.
func MonthToLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// LabelToMonth turns "September 2025" back into "2025-09". The second return
// reports whether the label was parseable; the caller keeps the original
// label untouched when it is not.
func LabelToMonth(label string) (string, bool) {
	t, err := time.Parse("January 2006", strings.TrimSpace(label))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01"), true
}
