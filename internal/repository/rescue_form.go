package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/service"
)

const rescueFormColumns = `form_id, alert_id, focal_unreachable, water_level, urgency_of_evacuation,
	hazard_present, accessibility, resource_needs, other_information, status, created_by, created_at`

type RescueFormRepository struct {
	db *pgxpool.Pool
}

func NewRescueFormRepository(db *pgxpool.Pool) service.RescueFormRepository {
	return &RescueFormRepository{db: db}
}

// CreateRescueForm inserts the form and moves the alert to the form's status
// in one transaction. The unique alert_id constraint turns a concurrent
// second insert into models.ErrDuplicate.
func (r *RescueFormRepository) CreateRescueForm(ctx context.Context, form *models.RescueForm) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := lockAlert(ctx, tx, form.AlertID); err != nil {
			return err
		}

		query := `
			INSERT INTO rescue_forms (
				alert_id, focal_unreachable, water_level, urgency_of_evacuation,
				hazard_present, accessibility, resource_needs, other_information,
				status, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING form_id, created_at;
		`
		err := tx.QueryRow(ctx, query,
			form.AlertID,
			form.FocalUnreachable,
			form.WaterLevel,
			form.UrgencyOfEvacuation,
			form.HazardPresent,
			form.Accessibility,
			form.ResourceNeeds,
			form.OtherInformation,
			form.Status,
			form.CreatedBy,
		).Scan(&form.FormID, &form.CreatedAt)
		if err != nil {
			return mapError(err, "create rescue form")
		}

		return setAlertStatus(ctx, tx, form.AlertID, form.Status)
	})
}

func (r *RescueFormRepository) GetRescueForm(ctx context.Context, alertID string) (*models.RescueForm, error) {
	query := `SELECT ` + rescueFormColumns + ` FROM rescue_forms WHERE alert_id = $1;`
	form, err := scanRescueForm(r.db.QueryRow(ctx, query, alertID))
	if err != nil {
		return nil, mapError(err, "get rescue form for "+alertID)
	}
	return form, nil
}

// SetRescueStatus writes status to the form and its alert together.
func (r *RescueFormRepository) SetRescueStatus(ctx context.Context, alertID string, status models.Status) (*models.RescueForm, error) {
	var form *models.RescueForm
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := lockAlert(ctx, tx, alertID); err != nil {
			return err
		}

		query := `UPDATE rescue_forms SET status = $1 WHERE alert_id = $2 RETURNING ` + rescueFormColumns + `;`
		var err error
		form, err = scanRescueForm(tx.QueryRow(ctx, query, status, alertID))
		if err != nil {
			return mapError(err, "set rescue status for "+alertID)
		}
		return setAlertStatus(ctx, tx, alertID, status)
	})
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (r *RescueFormRepository) ListRescueForms(ctx context.Context, status models.Status) ([]*models.RescueForm, error) {
	query := `
		SELECT ` + rescueFormColumns + `
		FROM rescue_forms
		WHERE $1 = '' OR status = $1
		ORDER BY created_at, form_id;
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, mapError(err, "list rescue forms")
	}
	defer rows.Close()

	forms := make([]*models.RescueForm, 0)
	for rows.Next() {
		form, err := scanRescueForm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rescue form row: %w", err)
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return forms, nil
}

// FixStatusDrift locks every form with its alert and rewrites the pairs
// whose statuses disagree with models.ReconciledStatus.
func (r *RescueFormRepository) FixStatusDrift(ctx context.Context) ([]string, error) {
	type pair struct {
		alertID     string
		formStatus  models.Status
		alertStatus models.Status
		hasReport   bool
	}

	fixed := make([]string, 0)
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		// alert rows first, in ID order, like every other rescue write
		if _, err := tx.Exec(ctx, `
			SELECT 1 FROM alerts
			WHERE alert_id IN (SELECT alert_id FROM rescue_forms)
			ORDER BY alert_id
			FOR UPDATE;
		`); err != nil {
			return mapError(err, "lock alerts with rescue forms")
		}

		rows, err := tx.Query(ctx, `
			SELECT rf.alert_id, rf.status, a.status, p.id IS NOT NULL
			FROM rescue_forms rf
			JOIN alerts a ON a.alert_id = rf.alert_id
			LEFT JOIN post_rescue_forms p ON p.alert_id = rf.alert_id
			ORDER BY rf.alert_id
			FOR UPDATE OF rf, a;
		`)
		if err != nil {
			return mapError(err, "scan status drift")
		}
		pairs := make([]pair, 0)
		for rows.Next() {
			var p pair
			if err := rows.Scan(&p.alertID, &p.formStatus, &p.alertStatus, &p.hasReport); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan status pair: %w", err)
			}
			pairs = append(pairs, p)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error list iteration: %w", err)
		}

		for _, p := range pairs {
			target := models.ReconciledStatus(p.formStatus, p.hasReport)
			if p.formStatus == target && p.alertStatus == target {
				continue
			}
			if _, err := tx.Exec(ctx, `UPDATE rescue_forms SET status = $1 WHERE alert_id = $2;`, target, p.alertID); err != nil {
				return mapError(err, "fix rescue form status")
			}
			if err := setAlertStatus(ctx, tx, p.alertID, target); err != nil {
				return err
			}
			fixed = append(fixed, p.alertID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixed, nil
}

func setAlertStatus(ctx context.Context, tx pgx.Tx, alertID string, status models.Status) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE alerts SET status = $1 WHERE alert_id = $2;`, status, alertID)
	if err != nil {
		return mapError(err, "set alert status")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found for status update: %w", alertID, models.ErrNotFound)
	}
	return nil
}

func scanRescueForm(row pgx.Row) (*models.RescueForm, error) {
	form := &models.RescueForm{}
	err := row.Scan(
		&form.FormID,
		&form.AlertID,
		&form.FocalUnreachable,
		&form.WaterLevel,
		&form.UrgencyOfEvacuation,
		&form.HazardPresent,
		&form.Accessibility,
		&form.ResourceNeeds,
		&form.OtherInformation,
		&form.Status,
		&form.CreatedBy,
		&form.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return form, nil
}
