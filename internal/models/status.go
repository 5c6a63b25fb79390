package models

import "errors"

// Status is shared by Alert and RescueForm. The two records are always
// written together, so a single enum and a single transition function
// serve both write paths.
type Status string

const (
	StatusUnassigned Status = "Unassigned"
	StatusWaitlisted Status = "Waitlisted"
	StatusDispatched Status = "Dispatched"
	StatusCompleted  Status = "Completed"
)

var (
	ErrInvalidStatus       = errors.New("invalid status")
	ErrRescueFormRequired  = errors.New("rescue form required")
	ErrRescueFormForbidden = errors.New("status not allowed once a rescue form exists")
)

// IsTransitionError reports whether err is a rejection from Transition.
func IsTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrRescueFormRequired) ||
		errors.Is(err, ErrRescueFormForbidden)
}

// IsValid reports whether s is any known alert status.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnassigned, StatusWaitlisted, StatusDispatched, StatusCompleted:
		return true
	}
	return false
}

// IsRescueStatus reports whether a RescueForm may carry s.
func (s Status) IsRescueStatus() bool {
	return s == StatusWaitlisted || s == StatusDispatched || s == StatusCompleted
}

// ReachedDispatch reports whether the rescue has been dispatched or completed.
func (s Status) ReachedDispatch() bool {
	return s == StatusDispatched || s == StatusCompleted
}

// Transition validates a status write for an alert. hasForm tells whether a
// RescueForm exists for the alert; when it does, the returned status must be
// written to both records in one transaction.
//
// There is no backward-transition guard: an authorized dispatcher or admin
// may move a rescue from Completed back to Waitlisted.
func Transition(to Status, hasForm bool) (Status, error) {
	if !to.IsValid() {
		return "", ErrInvalidStatus
	}
	if hasForm && !to.IsRescueStatus() {
		return "", ErrRescueFormForbidden
	}
	if !hasForm && to == StatusDispatched {
		return "", ErrRescueFormRequired
	}
	return to, nil
}

// InitialRescueStatus returns the status a new RescueForm starts in.
func InitialRescueStatus(requested Status) (Status, error) {
	switch requested {
	case "":
		return StatusWaitlisted, nil
	case StatusWaitlisted, StatusDispatched:
		return requested, nil
	}
	return "", ErrInvalidStatus
}

// ReconciledStatus is the status an alert and its rescue form should share.
// A filed post-rescue report means the rescue is Completed; otherwise the
// rescue form is authoritative.
func ReconciledStatus(formStatus Status, hasReport bool) Status {
	if hasReport {
		return StatusCompleted
	}
	return formStatus
}
