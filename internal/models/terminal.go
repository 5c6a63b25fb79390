package models

// Terminal is a field device that raises alerts. Archived terminals may no
// longer raise alerts.
type Terminal struct {
	TerminalID    string `json:"terminalId"`
	Name          string `json:"name"`
	Location      string `json:"location,omitempty"`
	FocalPersonID string `json:"focalPersonId,omitempty"`
	Archived      bool   `json:"archived"`
}

// FocalPerson is the community contact attached to a terminal.
type FocalPerson struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Contact    string `json:"contact,omitempty"`
	TerminalID string `json:"terminalId"`
}

func (f FocalPerson) FullName() string {
	switch {
	case f.FirstName == "":
		return f.LastName
	case f.LastName == "":
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}
