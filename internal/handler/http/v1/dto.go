package v1

import (
	"encoding/json"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

// CreateAlertRequest is sent by a terminal when its sensor trips.
type CreateAlertRequest struct {
	TerminalID  string `json:"terminalId" validate:"required"`
	SentThrough string `json:"sentThrough"`
}

// CreateUserAlertRequest is sent when someone presses the terminal button.
// Location may be a JSON object or an already encoded string.
type CreateUserAlertRequest struct {
	TerminalID  string          `json:"terminalId" validate:"required"`
	SentThrough string          `json:"sentThrough"`
	Location    json.RawMessage `json:"location" swaggertype:"object"`
}

type UpdateAlertRequest struct {
	Status      *string         `json:"status"`
	SentThrough *string         `json:"sentThrough"`
	Location    json.RawMessage `json:"location" swaggertype:"object"`
}

type CreateRescueFormRequest struct {
	FocalUnreachable    bool    `json:"focalUnreachable"`
	WaterLevel          *string `json:"waterLevel"`
	UrgencyOfEvacuation *string `json:"urgencyOfEvacuation"`
	HazardPresent       *string `json:"hazardPresent"`
	Accessibility       *string `json:"accessibility"`
	ResourceNeeds       *string `json:"resourceNeeds"`
	OtherInformation    string  `json:"otherInformation"`
	Status              string  `json:"status"`
}

type UpdateRescueStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreatePostRescueFormRequest struct {
	NoOfPersonnelDeployed *int   `json:"noOfPersonnelDeployed" validate:"required,gte=0"`
	ResourcesUsed         string `json:"resourcesUsed"`
	ActionTaken           string `json:"actionTaken"`
}

type AlertResponse struct {
	Alert *models.Alert `json:"alert"`
}

type PostRescueFormResponse struct {
	Message string                 `json:"message"`
	NewForm *models.PostRescueForm `json:"newForm"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MigrateAlertTypesResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Subscribers int    `json:"subscribers"`
}
