package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertService covers alert ingestion, reads and the generic update path.
type AlertService interface {
	CreateCriticalAlert(ctx context.Context, terminalID, sentThrough string) (*models.Alert, error)
	CreateUserAlert(ctx context.Context, terminalID, sentThrough, location string) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]*models.Alert, error)
	ListUnassignedAlerts(ctx context.Context) ([]*models.Alert, error)
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	UpdateAlert(ctx context.Context, actor models.Actor, alertID string, update models.AlertUpdate) (*models.Alert, error)
	MigrateAlertTypes(ctx context.Context, actor models.Actor) (int, error)
}

type alertService struct {
	alerts     AlertRepository
	terminals  TerminalRepository
	postCommit *PostCommit
	logger     *logrus.Logger
}

func NewAlertService(alerts AlertRepository, terminals TerminalRepository, postCommit *PostCommit, logger *logrus.Logger) AlertService {
	return &alertService{
		alerts:     alerts,
		terminals:  terminals,
		postCommit: postCommit,
		logger:     logger,
	}
}

// CreateCriticalAlert records a sensor-triggered alert.
func (s *alertService) CreateCriticalAlert(ctx context.Context, terminalID, sentThrough string) (*models.Alert, error) {
	return s.createAlert(ctx, "CreateCriticalAlert", models.AlertTypeCritical, terminalID, sentThrough, "")
}

// CreateUserAlert records a manually triggered alert. location is optional
// and falls back to the terminal's location.
func (s *alertService) CreateUserAlert(ctx context.Context, terminalID, sentThrough, location string) (*models.Alert, error) {
	return s.createAlert(ctx, "CreateUserAlert", models.AlertTypeUserInitiated, terminalID, sentThrough, location)
}

func (s *alertService) createAlert(ctx context.Context, method string, alertType models.AlertType, terminalID, sentThrough, location string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "alert",
		"method":      method,
		"terminal_id": terminalID,
	})
	log.Info("Attempting to create a new alert")

	terminalID = strings.TrimSpace(terminalID)
	if terminalID == "" {
		return nil, apperror.BadRequest("terminalID is required")
	}

	terminal, err := s.terminals.GetTerminal(ctx, terminalID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Alert raised by an unknown terminal")
			return nil, apperror.BadRequest("Terminal not found")
		}
		log.WithError(err).Error("Failed to get terminal from repository")
		return nil, fmt.Errorf("service: could not get terminal: %w", apperror.Internal(err))
	}
	if terminal.Archived {
		log.Warn("Alert raised by an archived terminal")
		return nil, apperror.BadRequest("Terminal is archived")
	}

	if location == "" {
		location = terminal.Location
	}
	if location != "" {
		loc, err := models.ParseLocation(location)
		if err != nil {
			log.WithError(err).Warn("Alert carries a malformed location")
			return nil, apperror.Wrap(apperror.KindBadRequest, "invalid location", err)
		}
		location = loc.Encode()
	}

	alert := &models.Alert{
		TerminalID:  terminalID,
		AlertType:   alertType,
		SentThrough: sentThrough,
		Status:      models.StatusUnassigned,
		Location:    location,
	}
	if err := s.alerts.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", apperror.Internal(err))
	}

	event := models.NewEvent(models.EventAlertCreated, alert)
	s.postCommit.Run(ctx, &event)

	log.WithField("alert_id", alert.AlertID).Info("Alert created successfully")
	return alert, nil
}

// ListAlerts returns every alert, newest first.
func (s *alertService) ListAlerts(ctx context.Context) ([]*models.Alert, error) {
	return s.listAlerts(ctx, "ListAlerts", "")
}

// ListUnassignedAlerts returns alerts nobody has picked up yet.
func (s *alertService) ListUnassignedAlerts(ctx context.Context) ([]*models.Alert, error) {
	return s.listAlerts(ctx, "ListUnassignedAlerts", models.StatusUnassigned)
}

func (s *alertService) listAlerts(ctx context.Context, method string, status models.Status) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  method,
	})
	log.Info("Listing alerts")

	alerts, err := s.alerts.ListAlerts(ctx, status)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", apperror.Internal(err))
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// GetAlert returns one alert by ID.
func (s *alertService) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GetAlert",
		"alert_id": alertID,
	})

	alert, err := s.alerts.GetAlert(ctx, alertID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Alert not found")
			return nil, apperror.NotFound("Alert not found")
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", apperror.Internal(err))
	}
	return alert, nil
}

// UpdateAlert is the generic alert update path. The store applies a status
// change through the shared transition rules and mirrors it onto the
// RescueForm inside the same transaction, so a concurrent rescue write can
// neither be overwritten nor slip past the rescue form gate.
func (s *alertService) UpdateAlert(ctx context.Context, actor models.Actor, alertID string, update models.AlertUpdate) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to update alert")

	if err := authorize(actor, CapUpdateStatus); err != nil {
		log.Warn("Actor is not allowed to update alerts")
		return nil, err
	}

	if update.Location != nil {
		loc, err := models.ParseLocation(*update.Location)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindBadRequest, "invalid location", err)
		}
		encoded := loc.Encode()
		update.Location = &encoded
	}

	alert, statusChanged, err := s.alerts.UpdateAlert(ctx, alertID, update)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Warn("Alert not found")
			return nil, apperror.NotFound("Alert not found")
		case models.IsTransitionError(err):
			log.WithError(err).Warn("Rejected alert status transition")
			return nil, transitionError(err)
		}
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", apperror.Internal(err))
	}

	if statusChanged {
		event := models.NewEvent(models.EventAlertStatusUpdate, models.StatusUpdate{
			AlertID: alert.AlertID,
			Status:  alert.Status,
		})
		s.postCommit.Run(ctx, &event)
	} else {
		s.postCommit.Run(ctx, nil)
	}

	log.WithFields(logrus.Fields{"status": alert.Status, "status_changed": statusChanged}).Info("Alert updated successfully")
	return alert, nil
}

// MigrateAlertTypes rewrites legacy alert type spellings to the canonical
// values. Alerts that are already canonical are left alone.
func (s *alertService) MigrateAlertTypes(ctx context.Context, actor models.Actor) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "MigrateAlertTypes",
		"actor":   actor.ID,
	})
	log.Info("Migrating alert types")

	if err := authorize(actor, CapAdminister); err != nil {
		return 0, err
	}

	raw, err := s.alerts.RawAlertTypes(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read alert types from repository")
		return 0, fmt.Errorf("service: could not read alert types: %w", apperror.Internal(err))
	}

	updated := 0
	for alertID, value := range raw {
		normalized, ok := models.NormalizeAlertType(value)
		if !ok {
			log.WithFields(logrus.Fields{"alert_id": alertID, "alert_type": value}).Warn("Cannot classify alert type")
			continue
		}
		if string(normalized) == value {
			continue
		}
		if err := s.alerts.SetAlertType(ctx, alertID, normalized); err != nil {
			log.WithError(err).WithField("alert_id", alertID).Error("Failed to set alert type")
			return updated, fmt.Errorf("service: could not migrate alert %s: %w", alertID, apperror.Internal(err))
		}
		updated++
	}

	if updated > 0 {
		s.postCommit.Run(ctx, nil)
	}
	log.WithField("updated", updated).Info("Alert types migrated")
	return updated, nil
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, models.ErrRescueFormRequired):
		return apperror.Wrap(apperror.KindBadRequest, "Rescue Form must be created before dispatching", err)
	case errors.Is(err, models.ErrRescueFormForbidden):
		return apperror.Wrap(apperror.KindBadRequest, "Status must be Waitlisted, Dispatched or Completed once a Rescue Form exists", err)
	}
	return apperror.Wrap(apperror.KindBadRequest, "Invalid status", err)
}
