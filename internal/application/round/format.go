package round

import (
	"fmt"
	"time"
)

// FormatElapsed renders d in whole seconds as MM:SS, or H:MM:SS from one
// hour up. Negative durations render as 00:00.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}

	h := secs / 3600
	m := secs / 60 % 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
