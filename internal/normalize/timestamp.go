package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayouts are tried in order when parsing exporter date strings. The GMT
// long form is the one the CSV exports use; the rest cover JSON exports.
var timeLayouts = []string{
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimeMillis parses an exporter timestamp into epoch milliseconds.
// Numeric input is taken as epoch milliseconds (or seconds when too small to
// be a millisecond count). Returns 0 when the value cannot be interpreted.
func ParseTimeMillis(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epochMillis(n)
	}

	// Drop a trailing timezone description like "(Coordinated Universal Time)".
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func epochMillis(n int64) int64 {
	// Counts below ~Sep 2001 in milliseconds are assumed to be seconds.
	if n > 0 && n < 1e12 {
		return n * 1000
	}
	return n
}

// fallbackID synthesizes an identity for records whose source carries none.
// Such ids are unique per call, so re-uploading the same id-less source file
// produces fresh records rather than deduplicating.
func fallbackID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
