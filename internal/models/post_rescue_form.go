package models

import "time"

// PostRescueForm is the after-action report that closes a rescue.
type PostRescueForm struct {
	ID                    string     `json:"id"`
	AlertID               string     `json:"alertID"`
	NoOfPersonnelDeployed int        `json:"noOfPersonnelDeployed"`
	ResourcesUsed         string     `json:"resourcesUsed"`
	ActionTaken           string     `json:"actionTaken"`
	CompletedAt           time.Time  `json:"completedAt"`
	ArchivedAt            *time.Time `json:"archivedAt"`
}

func (p *PostRescueForm) IsArchived() bool {
	return p.ArchivedAt != nil
}
