// Package format renders media attributes as short human-readable
// strings for terminal output.
package format

import (
	"strconv"
)

// Duration renders a second count as m:ss or h:mm:ss.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return strconv.Itoa(h) + ":" + pad(m) + ":" + pad(s)
	}
	return strconv.Itoa(m) + ":" + pad(s)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Size renders a byte count with a binary unit suffix, one decimal.
func Size(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return strconv.FormatInt(bytes, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	value := float64(bytes) / float64(div)
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}

// BitRate renders a kbit/s value, or an empty string when unknown.
func BitRate(kbps int) string {
	if kbps <= 0 {
		return ""
	}
	return strconv.Itoa(kbps) + " kbit/s"
}
