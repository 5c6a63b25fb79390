package models

import "time"

// RescueForm is a dispatcher's field assessment for one alert.
type RescueForm struct {
	FormID              string    `json:"formId"`
	AlertID             string    `json:"alertId"`
	FocalUnreachable    bool      `json:"focalUnreachable"`
	WaterLevel          *string   `json:"waterLevel"`
	UrgencyOfEvacuation *string   `json:"urgencyOfEvacuation"`
	HazardPresent       *string   `json:"hazardPresent"`
	Accessibility       *string   `json:"accessibility"`
	ResourceNeeds       *string   `json:"resourceNeeds"`
	OtherInformation    string    `json:"otherInformation,omitempty"`
	Status              Status    `json:"status"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
}

// HasCoreAssessment reports whether all five core assessment fields are set.
func (f *RescueForm) HasCoreAssessment() bool {
	for _, v := range []*string{f.WaterLevel, f.UrgencyOfEvacuation, f.HazardPresent, f.Accessibility, f.ResourceNeeds} {
		if v == nil || *v == "" {
			return false
		}
	}
	return true
}

// ClearCoreAssessment drops the core fields for a focal-unreachable form.
func (f *RescueForm) ClearCoreAssessment() {
	f.WaterLevel = nil
	f.UrgencyOfEvacuation = nil
	f.HazardPresent = nil
	f.Accessibility = nil
	f.ResourceNeeds = nil
}
