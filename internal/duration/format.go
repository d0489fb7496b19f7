package duration

import "fmt"

// Format renders seconds as zero-padded HH:MM:SS. Negative input is treated
// as zero. Past 99 hours the hour field widens rather than wrapping.
func Format(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
