package models

import "time"

type EventType string

const (
	EventAlertCreated        EventType = "alert:created"
	EventRescueFormCreated   EventType = "rescueForm:created"
	EventAlertStatusUpdate   EventType = "alert:statusUpdate"
	EventPostRescueCreated   EventType = "postRescue:created"
	EventWaitlistFormRemoved EventType = "waitlist:formRemoved"
)

// Event is a lifecycle notification published after a mutation commits.
// Data mirrors the REST resource that changed.
type Event struct {
	Type      EventType `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(t EventType, data any) Event {
	return Event{Type: t, Data: data, Timestamp: time.Now().UTC()}
}

// StatusUpdate is the payload of alert:statusUpdate and waitlist:formRemoved.
type StatusUpdate struct {
	AlertID string `json:"alertId"`
	FormID  string `json:"formId,omitempty"`
	Status  Status `json:"status"`
}
