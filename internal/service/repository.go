package service

import (
	"context"
	"time"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

// AlertRepository persists alerts. Lookups return models.ErrNotFound when
// the alert does not exist.
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	// ListAlerts returns alerts newest first; an empty status lists all.
	ListAlerts(ctx context.Context, status models.Status) ([]*models.Alert, error)
	// UpdateAlert applies the non-nil fields of update in one transaction
	// holding the alert. A status change is checked with models.Transition
	// against the RescueForm as it stands inside that transaction and is
	// written to the form too. It returns the stored alert and whether its
	// status changed; a rejected transition comes back as the Transition error.
	UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.Alert, bool, error)
	RawAlertTypes(ctx context.Context) (map[string]string, error)
	SetAlertType(ctx context.Context, alertID string, alertType models.AlertType) error
}

// TerminalRepository resolves the terminals that raise alerts.
type TerminalRepository interface {
	GetTerminal(ctx context.Context, terminalID string) (*models.Terminal, error)
}

// RescueFormRepository persists rescue forms. Every write that changes a
// form status also writes the alert status in the same transaction.
type RescueFormRepository interface {
	// CreateRescueForm returns models.ErrDuplicate when the alert already has a form.
	CreateRescueForm(ctx context.Context, form *models.RescueForm) error
	GetRescueForm(ctx context.Context, alertID string) (*models.RescueForm, error)
	SetRescueStatus(ctx context.Context, alertID string, status models.Status) (*models.RescueForm, error)
	ListRescueForms(ctx context.Context, status models.Status) ([]*models.RescueForm, error)
	// FixStatusDrift reconciles alerts and forms whose statuses disagree and
	// returns the alert IDs it touched.
	FixStatusDrift(ctx context.Context) ([]string, error)
}

// ReportRepository persists post-rescue forms and serves the report queries.
type ReportRepository interface {
	// CreatePostRescueForm marks the alert and its form Completed in the same
	// transaction. It returns models.ErrDuplicate for a second form.
	CreatePostRescueForm(ctx context.Context, form *models.PostRescueForm) error
	GetPostRescueForm(ctx context.Context, alertID string) (*models.PostRescueForm, error)
	SetArchivedAt(ctx context.Context, alertID string, archivedAt *time.Time) error
	DeletePostRescueForm(ctx context.Context, alertID string) error

	ListPending(ctx context.Context) ([]*models.PendingReport, error)
	ListCompleted(ctx context.Context, scope models.ArchiveScope) ([]*models.CompletedReport, error)
	ListDetailed(ctx context.Context, filter models.ReportFilter) ([]*models.DetailedReport, error)
	GetDetailed(ctx context.Context, alertID string) (*models.DetailedReport, error)
}

// ReportCache stores report snapshots by category and optional filter key.
// It is never authoritative.
type ReportCache interface {
	Get(ctx context.Context, category, key string, dst any) (bool, error)
	// Generation returns a counter that every Invalidate or Clear of the
	// category moves forward.
	Generation(ctx context.Context, category string) (uint64, error)
	// Set stores value only if the category is still at generation, and
	// reports whether it did.
	Set(ctx context.Context, category, key string, generation uint64, value any) (bool, error)
	// Invalidate drops one entry, or every entry of the category when key is empty.
	Invalidate(ctx context.Context, category, key string) error
	Clear(ctx context.Context) error
}

// EventPublisher fans lifecycle events out to observers. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}
