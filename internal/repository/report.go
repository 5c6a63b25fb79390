package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/service"
)

const reportJoins = `
	FROM post_rescue_forms p
	JOIN alerts a ON a.alert_id = p.alert_id
	JOIN rescue_forms rf ON rf.alert_id = p.alert_id
	LEFT JOIN terminals t ON t.terminal_id = a.terminal_id
	LEFT JOIN focal_persons fp ON fp.id = t.focal_person_id`

const detailedSelect = `
	SELECT
		a.alert_id, a.terminal_id, a.alert_type, a.sent_through, a.status, a.location, a.created_at,
		COALESCE(t.name, ''), COALESCE(t.location, ''), ` + focalNameExpr + `,
		rf.form_id, rf.alert_id, rf.focal_unreachable, rf.water_level, rf.urgency_of_evacuation,
		rf.hazard_present, rf.accessibility, rf.resource_needs, rf.other_information,
		rf.status, rf.created_by, rf.created_at,
		p.id, p.alert_id, p.no_of_personnel_deployed, p.resources_used, p.action_taken,
		p.completed_at, p.archived_at` + reportJoins

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// CreatePostRescueForm inserts the report and marks the alert and its
// rescue form Completed in one transaction.
func (r *ReportRepository) CreatePostRescueForm(ctx context.Context, form *models.PostRescueForm) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := lockAlert(ctx, tx, form.AlertID); err != nil {
			return err
		}

		query := `
			INSERT INTO post_rescue_forms (alert_id, no_of_personnel_deployed, resources_used, action_taken, completed_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`
		err := tx.QueryRow(ctx, query,
			form.AlertID,
			form.NoOfPersonnelDeployed,
			form.ResourcesUsed,
			form.ActionTaken,
			form.CompletedAt,
		).Scan(&form.ID)
		if err != nil {
			return mapError(err, "create post-rescue form")
		}

		if _, err := tx.Exec(ctx, `UPDATE rescue_forms SET status = $1 WHERE alert_id = $2;`, models.StatusCompleted, form.AlertID); err != nil {
			return mapError(err, "complete rescue form")
		}
		return setAlertStatus(ctx, tx, form.AlertID, models.StatusCompleted)
	})
}

func (r *ReportRepository) GetPostRescueForm(ctx context.Context, alertID string) (*models.PostRescueForm, error) {
	query := `
		SELECT id, alert_id, no_of_personnel_deployed, resources_used, action_taken, completed_at, archived_at
		FROM post_rescue_forms
		WHERE alert_id = $1;
	`
	form := &models.PostRescueForm{}
	err := r.db.QueryRow(ctx, query, alertID).Scan(
		&form.ID,
		&form.AlertID,
		&form.NoOfPersonnelDeployed,
		&form.ResourcesUsed,
		&form.ActionTaken,
		&form.CompletedAt,
		&form.ArchivedAt,
	)
	if err != nil {
		return nil, mapError(err, "get post-rescue form for "+alertID)
	}
	return form, nil
}

// SetArchivedAt archives (non-nil) or restores (nil) a report. completed_at
// is never touched.
func (r *ReportRepository) SetArchivedAt(ctx context.Context, alertID string, archivedAt *time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE post_rescue_forms SET archived_at = $1 WHERE alert_id = $2;`, archivedAt, alertID)
	if err != nil {
		return mapError(err, "set archived_at")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post-rescue form for %s not found: %w", alertID, models.ErrNotFound)
	}
	return nil
}

// DeletePostRescueForm removes the report row only.
func (r *ReportRepository) DeletePostRescueForm(ctx context.Context, alertID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM post_rescue_forms WHERE alert_id = $1;`, alertID)
	if err != nil {
		return mapError(err, "delete post-rescue form")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post-rescue form for %s not found: %w", alertID, models.ErrNotFound)
	}
	return nil
}

func (r *ReportRepository) ListPending(ctx context.Context) ([]*models.PendingReport, error) {
	query := `
		SELECT
			a.alert_id, a.terminal_id, COALESCE(t.name, ''), ` + focalNameExpr + `,
			a.alert_type, rf.status, a.location, COALESCE(t.location, ''), rf.form_id, a.created_at
		FROM rescue_forms rf
		JOIN alerts a ON a.alert_id = rf.alert_id
		LEFT JOIN post_rescue_forms p ON p.alert_id = rf.alert_id
		LEFT JOIN terminals t ON t.terminal_id = a.terminal_id
		LEFT JOIN focal_persons fp ON fp.id = t.focal_person_id
		WHERE p.id IS NULL
		ORDER BY a.created_at DESC, a.alert_id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "list pending reports")
	}
	defer rows.Close()

	reports := make([]*models.PendingReport, 0)
	for rows.Next() {
		var alertLocation, terminalLocation string
		p := &models.PendingReport{}
		if err := rows.Scan(
			&p.AlertID,
			&p.TerminalID,
			&p.TerminalName,
			&p.FocalPersonName,
			&p.AlertType,
			&p.Status,
			&alertLocation,
			&terminalLocation,
			&p.RescueFormID,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending report row: %w", err)
		}
		loc := models.ResolveLocation(alertLocation, terminalLocation)
		p.Address, p.Lat, p.Lng = loc.Address, loc.Lat, loc.Lng
		reports = append(reports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) ListCompleted(ctx context.Context, scope models.ArchiveScope) ([]*models.CompletedReport, error) {
	where := ""
	switch scope {
	case models.ScopeActive:
		where = "WHERE p.archived_at IS NULL"
	case models.ScopeArchived:
		where = "WHERE p.archived_at IS NOT NULL"
	}
	query := `
		SELECT
			a.alert_id, a.terminal_id, COALESCE(t.name, ''), ` + focalNameExpr + `,
			a.alert_type, a.location, COALESCE(t.location, ''), rf.form_id, p.id,
			p.no_of_personnel_deployed, p.resources_used, p.action_taken, p.completed_at, p.archived_at` +
		reportJoins + `
		` + where + `
		ORDER BY p.completed_at DESC, a.alert_id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "list completed reports")
	}
	defer rows.Close()

	reports := make([]*models.CompletedReport, 0)
	for rows.Next() {
		var alertLocation, terminalLocation string
		c := &models.CompletedReport{}
		if err := rows.Scan(
			&c.AlertID,
			&c.TerminalID,
			&c.TerminalName,
			&c.FocalPersonName,
			&c.AlertType,
			&alertLocation,
			&terminalLocation,
			&c.RescueFormID,
			&c.PostRescueFormID,
			&c.NoOfPersonnelDeployed,
			&c.ResourcesUsed,
			&c.ActionTaken,
			&c.CompletedAt,
			&c.ArchivedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan completed report row: %w", err)
		}
		c.Address = models.ResolveLocation(alertLocation, terminalLocation).Address
		reports = append(reports, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// ListDetailed returns unarchived reports, narrowed by alert or terminal.
func (r *ReportRepository) ListDetailed(ctx context.Context, filter models.ReportFilter) ([]*models.DetailedReport, error) {
	query := detailedSelect + `
		WHERE p.archived_at IS NULL
			AND ($1 = '' OR a.alert_id = $1)
			AND ($2 = '' OR a.terminal_id = $2)
		ORDER BY p.completed_at DESC, a.alert_id DESC;
	`
	rows, err := r.db.Query(ctx, query, filter.AlertID, filter.TerminalID)
	if err != nil {
		return nil, mapError(err, "list detailed reports")
	}
	defer rows.Close()

	reports := make([]*models.DetailedReport, 0)
	for rows.Next() {
		report, err := scanDetailed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detailed report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) GetDetailed(ctx context.Context, alertID string) (*models.DetailedReport, error) {
	report, err := scanDetailed(r.db.QueryRow(ctx, detailedSelect+` WHERE p.alert_id = $1;`, alertID))
	if err != nil {
		return nil, mapError(err, "get detailed report for "+alertID)
	}
	return report, nil
}

func scanDetailed(row pgx.Row) (*models.DetailedReport, error) {
	var terminalLocation string
	d := &models.DetailedReport{}
	a, rf, p := &d.Alert, &d.RescueForm, &d.PostRescueForm
	err := row.Scan(
		&a.AlertID, &a.TerminalID, &a.AlertType, &a.SentThrough, &a.Status, &a.Location, &a.CreatedAt,
		&d.TerminalName, &terminalLocation, &d.FocalPersonName,
		&rf.FormID, &rf.AlertID, &rf.FocalUnreachable, &rf.WaterLevel, &rf.UrgencyOfEvacuation,
		&rf.HazardPresent, &rf.Accessibility, &rf.ResourceNeeds, &rf.OtherInformation,
		&rf.Status, &rf.CreatedBy, &rf.CreatedAt,
		&p.ID, &p.AlertID, &p.NoOfPersonnelDeployed, &p.ResourcesUsed, &p.ActionTaken,
		&p.CompletedAt, &p.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Location = models.ResolveLocation(a.Location, terminalLocation)
	return d, nil
}
