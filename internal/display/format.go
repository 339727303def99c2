package display

import (
	"fmt"
	"time"
)

// FormatBytes returns a human-readable binary size (B, KiB, … EiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatThroughput renders bytes processed over d as a per-second rate
// ("12.3 MiB/s"). A zero or negative duration renders as "n/a".
func FormatThroughput(bytes int64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	perSec := int64(float64(bytes) / d.Seconds())
	return FormatBytes(perSec) + "/s"
}

// Count renders n with a singular or plural noun ("1 file", "3 files").
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
