package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// RescueService is the rescue form gate: it creates assessments and drives
// the shared Alert and RescueForm status.
type RescueService interface {
	CreateRescueForm(ctx context.Context, actor models.Actor, alertID string, form *models.RescueForm) (*models.RescueForm, error)
	GetRescueForm(ctx context.Context, alertID string) (*models.RescueForm, error)
	UpdateRescueFormStatus(ctx context.Context, actor models.Actor, alertID string, status models.Status) (*models.RescueForm, error)
	ListWaitlisted(ctx context.Context) ([]*models.RescueForm, error)
	DispatchWaitlisted(ctx context.Context, actor models.Actor, alertID string) (*models.RescueForm, error)
	FixRescueFormStatus(ctx context.Context, actor models.Actor) (*models.FixResult, error)
}

type rescueService struct {
	alerts     AlertRepository
	forms      RescueFormRepository
	postCommit *PostCommit
	logger     *logrus.Logger
}

func NewRescueService(alerts AlertRepository, forms RescueFormRepository, postCommit *PostCommit, logger *logrus.Logger) RescueService {
	return &rescueService{
		alerts:     alerts,
		forms:      forms,
		postCommit: postCommit,
		logger:     logger,
	}
}

// CreateRescueForm validates in a fixed order: alert existence, duplicate
// form, required assessment fields, then the caller's role.
func (s *rescueService) CreateRescueForm(ctx context.Context, actor models.Actor, alertID string, form *models.RescueForm) (*models.RescueForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "rescue",
		"method":   "CreateRescueForm",
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to create a rescue form")

	if _, err := s.getAlert(ctx, alertID); err != nil {
		log.WithError(err).Warn("Rescue form for unknown alert")
		return nil, err
	}

	if _, err := s.forms.GetRescueForm(ctx, alertID); err == nil {
		log.Warn("Rescue form already exists")
		return nil, apperror.Conflict("Rescue Form Already Exists")
	} else if !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to get rescue form from repository")
		return nil, fmt.Errorf("service: could not get rescue form: %w", apperror.Internal(err))
	}

	if form.FocalUnreachable {
		form.ClearCoreAssessment()
	} else if !form.HasCoreAssessment() {
		log.Warn("Rescue form is missing core assessment fields")
		return nil, apperror.BadRequest("waterLevel, urgencyOfEvacuation, hazardPresent, accessibility and resourceNeeds are required when the focal person is reachable")
	}

	if err := authorize(actor, CapCreateRescueForm); err != nil {
		log.Warn("Actor is not allowed to create rescue forms")
		return nil, err
	}

	status, err := models.InitialRescueStatus(form.Status)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindBadRequest, "Status must be Waitlisted or Dispatched", err)
	}

	form.AlertID = alertID
	form.Status = status
	form.CreatedBy = actor.ID
	if err := s.forms.CreateRescueForm(ctx, form); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Warn("Rescue form created concurrently")
			return nil, apperror.Wrap(apperror.KindConflict, "Rescue Form Already Exists", err)
		}
		log.WithError(err).Error("Failed to create rescue form in repository")
		return nil, fmt.Errorf("service: could not create rescue form: %w", apperror.Internal(err))
	}

	event := models.NewEvent(models.EventRescueFormCreated, form)
	s.postCommit.Run(ctx, &event)

	log.WithFields(logrus.Fields{"form_id": form.FormID, "status": form.Status}).Info("Rescue form created successfully")
	return form, nil
}

// GetRescueForm returns the form attached to an alert.
func (s *rescueService) GetRescueForm(ctx context.Context, alertID string) (*models.RescueForm, error) {
	form, err := s.forms.GetRescueForm(ctx, alertID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperror.NotFound("Rescue Form not found")
		}
		s.logger.WithFields(logrus.Fields{
			"service":  "rescue",
			"method":   "GetRescueForm",
			"alert_id": alertID,
		}).WithError(err).Error("Failed to get rescue form from repository")
		return nil, fmt.Errorf("service: could not get rescue form: %w", apperror.Internal(err))
	}
	return form, nil
}

// UpdateRescueFormStatus moves the rescue to any rescue status. Moving
// backwards is allowed.
func (s *rescueService) UpdateRescueFormStatus(ctx context.Context, actor models.Actor, alertID string, status models.Status) (*models.RescueForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "rescue",
		"method":   "UpdateRescueFormStatus",
		"alert_id": alertID,
		"status":   status,
		"actor":    actor.ID,
	})
	log.Info("Attempting to update rescue status")

	if err := authorize(actor, CapUpdateStatus); err != nil {
		log.Warn("Actor is not allowed to update rescue status")
		return nil, err
	}

	form, err := s.setStatus(ctx, log, alertID, status)
	if err != nil {
		return nil, err
	}

	event := models.NewEvent(models.EventAlertStatusUpdate, models.StatusUpdate{
		AlertID: alertID,
		FormID:  form.FormID,
		Status:  form.Status,
	})
	s.postCommit.Run(ctx, &event)

	log.Info("Rescue status updated successfully")
	return form, nil
}

// ListWaitlisted returns the forms waiting for dispatch.
func (s *rescueService) ListWaitlisted(ctx context.Context) ([]*models.RescueForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "rescue",
		"method":  "ListWaitlisted",
	})

	forms, err := s.forms.ListRescueForms(ctx, models.StatusWaitlisted)
	if err != nil {
		log.WithError(err).Error("Failed to list waitlisted forms from repository")
		return nil, fmt.Errorf("service: could not list waitlisted forms: %w", apperror.Internal(err))
	}
	return forms, nil
}

// DispatchWaitlisted dispatches a waitlisted rescue and removes it from the
// waitlist view.
func (s *rescueService) DispatchWaitlisted(ctx context.Context, actor models.Actor, alertID string) (*models.RescueForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "rescue",
		"method":   "DispatchWaitlisted",
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to dispatch waitlisted rescue")

	if err := authorize(actor, CapUpdateStatus); err != nil {
		log.Warn("Actor is not allowed to dispatch")
		return nil, err
	}

	current, err := s.GetRescueForm(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusWaitlisted {
		log.WithField("status", current.Status).Warn("Rescue is not on the waitlist")
		return nil, apperror.BadRequest("Rescue Form is not Waitlisted")
	}

	form, err := s.setStatus(ctx, log, alertID, models.StatusDispatched)
	if err != nil {
		return nil, err
	}

	event := models.NewEvent(models.EventWaitlistFormRemoved, models.StatusUpdate{
		AlertID: alertID,
		FormID:  form.FormID,
		Status:  form.Status,
	})
	s.postCommit.Run(ctx, &event)

	log.Info("Waitlisted rescue dispatched")
	return form, nil
}

// FixRescueFormStatus reconciles alerts and forms whose statuses drifted.
// Running it twice touches nothing the second time.
func (s *rescueService) FixRescueFormStatus(ctx context.Context, actor models.Actor) (*models.FixResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "rescue",
		"method":  "FixRescueFormStatus",
		"actor":   actor.ID,
	})
	log.Info("Reconciling rescue form status")

	if err := authorize(actor, CapAdminister); err != nil {
		return nil, err
	}

	alertIDs, err := s.forms.FixStatusDrift(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reconcile status drift")
		return nil, fmt.Errorf("service: could not fix rescue form status: %w", apperror.Internal(err))
	}
	if alertIDs == nil {
		alertIDs = []string{}
	}
	if len(alertIDs) > 0 {
		s.postCommit.Run(ctx, nil)
	}

	log.WithField("fixed", len(alertIDs)).Info("Rescue form status reconciled")
	return &models.FixResult{Fixed: len(alertIDs), AlertIDs: alertIDs}, nil
}

func (s *rescueService) getAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	alert, err := s.alerts.GetAlert(ctx, alertID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperror.NotFound("Alert not found")
		}
		return nil, fmt.Errorf("service: could not get alert: %w", apperror.Internal(err))
	}
	return alert, nil
}

func (s *rescueService) setStatus(ctx context.Context, log *logrus.Entry, alertID string, status models.Status) (*models.RescueForm, error) {
	if _, err := s.getAlert(ctx, alertID); err != nil {
		return nil, err
	}

	next, err := models.Transition(status, true)
	if err != nil {
		log.WithError(err).Warn("Rejected rescue status transition")
		return nil, transitionError(err)
	}

	form, err := s.forms.SetRescueStatus(ctx, alertID, next)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperror.NotFound("Rescue Form not found")
		}
		log.WithError(err).Error("Failed to set rescue status in repository")
		return nil, fmt.Errorf("service: could not update rescue status: %w", apperror.Internal(err))
	}
	return form, nil
}
