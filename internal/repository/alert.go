package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/service"
)

const alertColumns = `alert_id, terminal_id, alert_type, sent_through, status, location, created_at`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// CreateAlert inserts the alert and fills in its generated ID and timestamp.
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (terminal_id, alert_type, sent_through, status, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING alert_id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.TerminalID,
		alert.AlertType,
		alert.SentThrough,
		alert.Status,
		alert.Location,
	).Scan(&alert.AlertID, &alert.CreatedAt)
	if err != nil {
		return mapError(err, "create alert")
	}
	return nil
}

func (r *AlertRepository) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = $1;`
	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID))
	if err != nil {
		return nil, mapError(err, "get alert "+alertID)
	}
	return alert, nil
}

func (r *AlertRepository) ListAlerts(ctx context.Context, status models.Status) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC, alert_id DESC;
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, mapError(err, "list alerts")
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// UpdateAlert applies update while holding the alert row. The rescue form
// check, the transition and both writes see one consistent state.
func (r *AlertRepository) UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.Alert, bool, error) {
	var (
		alert         *models.Alert
		statusChanged bool
	)
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		alert, err = lockAlert(ctx, tx, alertID)
		if err != nil {
			return err
		}

		if update.SentThrough != nil {
			alert.SentThrough = *update.SentThrough
		}
		if update.Location != nil {
			alert.Location = *update.Location
		}

		if update.Status != nil && *update.Status != alert.Status {
			var hasForm bool
			err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rescue_forms WHERE alert_id = $1);`, alertID).Scan(&hasForm)
			if err != nil {
				return mapError(err, "check rescue form for "+alertID)
			}
			next, err := models.Transition(*update.Status, hasForm)
			if err != nil {
				return fmt.Errorf("update alert %s: %w", alertID, err)
			}
			alert.Status = next
			statusChanged = true

			if hasForm {
				if _, err := tx.Exec(ctx, `UPDATE rescue_forms SET status = $1 WHERE alert_id = $2;`, next, alertID); err != nil {
					return mapError(err, "sync rescue form status")
				}
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE alerts SET
				sent_through = $1,
				location = $2,
				status = $3
			WHERE alert_id = $4;
		`, alert.SentThrough, alert.Location, alert.Status, alertID)
		if err != nil {
			return mapError(err, "update alert")
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return alert, statusChanged, nil
}

// lockAlert reads the alert and holds its row until tx ends. Every
// transaction that writes an alert together with its rescue records takes
// this lock first, so they serialize per alert in one lock order.
func lockAlert(ctx context.Context, tx pgx.Tx, alertID string) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = $1 FOR UPDATE;`
	alert, err := scanAlert(tx.QueryRow(ctx, query, alertID))
	if err != nil {
		return nil, mapError(err, "lock alert "+alertID)
	}
	return alert, nil
}

// RawAlertTypes returns the stored alert type of every alert, legacy
// spellings included.
func (r *AlertRepository) RawAlertTypes(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT alert_id, alert_type FROM alerts;`)
	if err != nil {
		return nil, mapError(err, "list alert types")
	}
	defer rows.Close()

	types := make(map[string]string)
	for rows.Next() {
		var id, alertType string
		if err := rows.Scan(&id, &alertType); err != nil {
			return nil, fmt.Errorf("failed to scan alert type row: %w", err)
		}
		types[id] = alertType
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return types, nil
}

func (r *AlertRepository) SetAlertType(ctx context.Context, alertID string, alertType models.AlertType) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE alerts SET alert_type = $1 WHERE alert_id = $2;`, alertType, alertID)
	if err != nil {
		return mapError(err, "set alert type")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found: %w", alertID, models.ErrNotFound)
	}
	return nil
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.AlertID,
		&alert.TerminalID,
		&alert.AlertType,
		&alert.SentThrough,
		&alert.Status,
		&alert.Location,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
