package models

import "time"

type AlertType string

const (
	AlertTypeCritical      AlertType = "Critical"
	AlertTypeUserInitiated AlertType = "User-Initiated"
)

// Alert is one distress event raised by a terminal.
type Alert struct {
	AlertID     string    `json:"alertId"`
	TerminalID  string    `json:"terminalId"`
	AlertType   AlertType `json:"alertType"`
	SentThrough string    `json:"sentThrough"`
	Status      Status    `json:"status"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NormalizeAlertType maps legacy spellings to the canonical alert type. It
// returns false when raw cannot be classified.
func NormalizeAlertType(raw string) (AlertType, bool) {
	switch raw {
	case string(AlertTypeCritical), "critical", "CRITICAL", "Auto", "auto", "sensor", "Sensor":
		return AlertTypeCritical, true
	case string(AlertTypeUserInitiated), "user-initiated", "User Initiated", "user", "User", "manual", "Manual":
		return AlertTypeUserInitiated, true
	}
	return "", false
}

// AlertUpdate carries the optional fields of a generic alert update.
type AlertUpdate struct {
	Status      *Status
	SentThrough *string
	Location    *string
}
