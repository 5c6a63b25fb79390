package v1

import (
	"bytes"
	"encoding/json"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

// locationString normalizes a location given as a JSON object or as an
// encoded string into the stored string form.
func locationString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func DTOToAlertUpdate(dto UpdateAlertRequest) models.AlertUpdate {
	update := models.AlertUpdate{SentThrough: dto.SentThrough}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		update.Status = &status
	}
	if loc := locationString(dto.Location); loc != "" {
		update.Location = &loc
	}
	return update
}

func DTOToRescueFormModel(dto CreateRescueFormRequest) *models.RescueForm {
	return &models.RescueForm{
		FocalUnreachable:    dto.FocalUnreachable,
		WaterLevel:          dto.WaterLevel,
		UrgencyOfEvacuation: dto.UrgencyOfEvacuation,
		HazardPresent:       dto.HazardPresent,
		Accessibility:       dto.Accessibility,
		ResourceNeeds:       dto.ResourceNeeds,
		OtherInformation:    dto.OtherInformation,
		Status:              models.Status(dto.Status),
	}
}

func DTOToPostRescueFormModel(dto CreatePostRescueFormRequest) *models.PostRescueForm {
	form := &models.PostRescueForm{
		ResourcesUsed: dto.ResourcesUsed,
		ActionTaken:   dto.ActionTaken,
	}
	if dto.NoOfPersonnelDeployed != nil {
		form.NoOfPersonnelDeployed = *dto.NoOfPersonnelDeployed
	}
	return form
}
