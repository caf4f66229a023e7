package model

import "fmt"

// FormatDuration formats milliseconds as mm:ss.mmm with zero padding.
// Negative input is treated as zero.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
