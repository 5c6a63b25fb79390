package models

import (
	"fmt"
	"regexp"
)

const (
	AlertIDPrefix          = "ALRT"
	RescueFormIDPrefix     = "RF"
	PostRescueFormIDPrefix = "PRF"
)

var alertIDPattern = regexp.MustCompile(`^ALRT\d+$`)

// FormatID renders a sequential, human-readable identifier such as ALRT0001.
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}

// IsValidAlertID reports whether id looks like an alert identifier.
func IsValidAlertID(id string) bool {
	return alertIDPattern.MatchString(id)
}
