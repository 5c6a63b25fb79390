package models

import "time"

// PendingReport is a rescue that has a RescueForm but no PostRescueForm yet.
type PendingReport struct {
	AlertID         string    `json:"alertId"`
	TerminalID      string    `json:"terminalId"`
	TerminalName    string    `json:"terminalName"`
	FocalPersonName string    `json:"focalPersonName"`
	AlertType       AlertType `json:"alertType"`
	Status          Status    `json:"status"`
	Address         string    `json:"address"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	RescueFormID    string    `json:"rescueFormId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CompletedReport is one row of the completed and archived listings.
type CompletedReport struct {
	AlertID               string     `json:"alertId"`
	TerminalID            string     `json:"terminalId"`
	TerminalName          string     `json:"terminalName"`
	FocalPersonName       string     `json:"focalPersonName"`
	AlertType             AlertType  `json:"alertType"`
	Address               string     `json:"address"`
	RescueFormID          string     `json:"rescueFormId"`
	PostRescueFormID      string     `json:"postRescueFormId"`
	NoOfPersonnelDeployed int        `json:"noOfPersonnelDeployed"`
	ResourcesUsed         string     `json:"resourcesUsed"`
	ActionTaken           string     `json:"actionTaken"`
	CompletedAt           time.Time  `json:"completedAt"`
	ArchivedAt            *time.Time `json:"archivedAt"`
}

// DetailedReport joins everything known about one completed rescue.
type DetailedReport struct {
	Alert           Alert          `json:"alert"`
	Location        Location       `json:"location"`
	TerminalName    string         `json:"terminalName"`
	FocalPersonName string         `json:"focalPersonName"`
	RescueForm      RescueForm     `json:"rescueForm"`
	PostRescueForm  PostRescueForm `json:"postRescueForm"`
}

// TerminalSummary aggregates completed rescues per terminal.
type TerminalSummary struct {
	TerminalID      string     `json:"terminalId"`
	TerminalName    string     `json:"terminalName"`
	TotalRescues    int        `json:"totalRescues"`
	TotalPersonnel  int        `json:"totalPersonnel"`
	CriticalCount   int        `json:"criticalCount"`
	UserCount       int        `json:"userInitiatedCount"`
	LastCompletedAt *time.Time `json:"lastCompletedAt"`
}

// ChartPoint counts completed rescues per month split by alert type.
type ChartPoint struct {
	Month         string `json:"month"`
	Critical      int    `json:"critical"`
	UserInitiated int    `json:"userInitiated"`
	Total         int    `json:"total"`
}

// ReportFilter narrows the aggregated listing to one alert or terminal.
type ReportFilter struct {
	AlertID    string
	TerminalID string
}

// FixResult lists the alerts touched by a maintenance repair.
type FixResult struct {
	Fixed    int      `json:"fixed"`
	AlertIDs []string `json:"alertIds"`
}

// ArchiveScope selects which completed reports a listing returns.
type ArchiveScope int

const (
	ScopeActive ArchiveScope = iota
	ScopeArchived
	ScopeAll
)

// Includes reports whether a report with the given archive state is in scope.
func (s ArchiveScope) Includes(archived bool) bool {
	switch s {
	case ScopeActive:
		return !archived
	case ScopeArchived:
		return archived
	}
	return true
}
