package domain

import "strings"

// DefaultDescription labels an activity whose description was left blank.
const DefaultDescription = "Idle"

// Activity is one logged idle-time entry.
type Activity struct {
	Description string
	Seconds     int64
}

// NewActivity builds an activity from user input. The description is trimmed
// and falls back to DefaultDescription; negative durations clamp to zero.
func NewActivity(description string, seconds int64) Activity {
	if seconds < 0 {
		seconds = 0
	}
	return Activity{
		Description: CoalesceStr(strings.TrimSpace(description), DefaultDescription),
		Seconds:     seconds,
	}
}
