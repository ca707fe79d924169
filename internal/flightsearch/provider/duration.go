package provider

import (
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRe = regexp.MustCompile(`PT(\d+H)?(\d+M)?`)

// FormatDuration renders an ISO-8601 duration such as PT2H30M as "2h 30m".
// Absent components are omitted. Input without a PT prefix is returned as is.
func FormatDuration(value string) string {
	matches := isoDurationRe.FindStringSubmatch(value)
	if matches == nil {
		return value
	}
	hours := strings.Replace(matches[1], "H", "h", 1)
	minutes := strings.Replace(matches[2], "M", "m", 1)
	return strings.TrimSpace(hours + " " + minutes)
}

// DurationMinutes converts an ISO-8601 duration such as PT2H30M to minutes.
// Unparseable input yields 0.
func DurationMinutes(value string) int {
	matches := isoDurationRe.FindStringSubmatch(value)
	if matches == nil {
		return 0
	}
	hours, _ := strconv.Atoi(strings.TrimSuffix(matches[1], "H"))
	minutes, _ := strconv.Atoi(strings.TrimSuffix(matches[2], "M"))
	return hours*60 + minutes
}
