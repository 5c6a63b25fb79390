package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRescueService(t *testing.T) (*rescueService, serviceMocks) {
	m, postCommit, logger := newServiceMocks(t)
	svc := NewRescueService(m.alerts, m.forms, postCommit, logger)
	return svc.(*rescueService), m
}

func completeAssessment() *models.RescueForm {
	return &models.RescueForm{
		WaterLevel:          strPtr("Chest-deep"),
		UrgencyOfEvacuation: strPtr("Immediate"),
		HazardPresent:       strPtr("Strong current"),
		Accessibility:       strPtr("Boat only"),
		ResourceNeeds:       strPtr("Rubber boat"),
	}
}

func TestCreateRescueForm_Success(t *testing.T) {
	svc, m := newTestRescueService(t)

	m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
	m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
	m.forms.EXPECT().CreateRescueForm(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, form *models.RescueForm) error {
			form.FormID = "RF0001"
			return nil
		})
	m.expectPostCommit(models.EventRescueFormCreated)

	form, err := svc.CreateRescueForm(ctx, dispatcher, "ALRT0001", completeAssessment())

	require.NoError(t, err)
	assert.Equal(t, "RF0001", form.FormID)
	assert.Equal(t, "ALRT0001", form.AlertID)
	assert.Equal(t, models.StatusWaitlisted, form.Status)
	assert.Equal(t, dispatcher.ID, form.CreatedBy)
}

func TestCreateRescueForm_FocalUnreachableDropsAssessment(t *testing.T) {
	svc, m := newTestRescueService(t)

	m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
	m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
	m.forms.EXPECT().CreateRescueForm(ctx, gomock.Any()).Return(nil)
	m.expectPostCommit(models.EventRescueFormCreated)

	input := &models.RescueForm{FocalUnreachable: true, WaterLevel: strPtr("ankle"), Status: models.StatusDispatched}
	form, err := svc.CreateRescueForm(ctx, dispatcher, "ALRT0001", input)

	require.NoError(t, err)
	assert.Nil(t, form.WaterLevel)
	assert.Equal(t, models.StatusDispatched, form.Status)
}

func TestCreateRescueForm_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		actor models.Actor
		form  *models.RescueForm
		setup func(m serviceMocks)
		kind  apperror.Kind
	}{
		{
			name:  "unknown alert",
			actor: dispatcher,
			form:  completeAssessment(),
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
			},
			kind: apperror.KindNotFound,
		},
		{
			name:  "form exists",
			actor: dispatcher,
			form:  completeAssessment(),
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
				m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(&models.RescueForm{FormID: "RF0001"}, nil)
			},
			kind: apperror.KindConflict,
		},
		{
			name:  "missing core fields",
			actor: dispatcher,
			form:  &models.RescueForm{WaterLevel: strPtr("knee")},
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
				m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
			},
			kind: apperror.KindBadRequest,
		},
		{
			name:  "admin cannot create",
			actor: admin,
			form:  completeAssessment(),
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
				m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
			},
			kind: apperror.KindForbidden,
		},
		{
			name:  "completed is not an initial status",
			actor: dispatcher,
			form: func() *models.RescueForm {
				f := completeAssessment()
				f.Status = models.StatusCompleted
				return f
			}(),
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
				m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
			},
			kind: apperror.KindBadRequest,
		},
		{
			name:  "lost creation race",
			actor: dispatcher,
			form:  completeAssessment(),
			setup: func(m serviceMocks) {
				m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
				m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(nil, models.ErrNotFound)
				m.forms.EXPECT().CreateRescueForm(ctx, gomock.Any()).Return(models.ErrDuplicate)
			},
			kind: apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRescueService(t)
			tt.setup(m)
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.CreateRescueForm(ctx, tt.actor, "ALRT0001", tt.form)

			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
		})
	}
}

func TestUpdateRescueFormStatus(t *testing.T) {
	svc, m := newTestRescueService(t)

	m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
	m.forms.EXPECT().SetRescueStatus(ctx, "ALRT0001", models.StatusDispatched).
		Return(&models.RescueForm{FormID: "RF0001", AlertID: "ALRT0001", Status: models.StatusDispatched}, nil)
	m.expectPostCommit(models.EventAlertStatusUpdate)

	form, err := svc.UpdateRescueFormStatus(ctx, admin, "ALRT0001", models.StatusDispatched)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, form.Status)
}

func TestUpdateRescueFormStatus_Unassigned(t *testing.T) {
	svc, m := newTestRescueService(t)

	m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
	m.forms.EXPECT().SetRescueStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateRescueFormStatus(ctx, dispatcher, "ALRT0001", models.StatusUnassigned)

	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.True(t, errors.Is(err, models.ErrRescueFormForbidden))
}

func TestDispatchWaitlisted(t *testing.T) {
	t.Run("waitlisted", func(t *testing.T) {
		svc, m := newTestRescueService(t)

		m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(&models.RescueForm{FormID: "RF0001", Status: models.StatusWaitlisted}, nil)
		m.alerts.EXPECT().GetAlert(ctx, "ALRT0001").Return(&models.Alert{AlertID: "ALRT0001"}, nil)
		m.forms.EXPECT().SetRescueStatus(ctx, "ALRT0001", models.StatusDispatched).
			Return(&models.RescueForm{FormID: "RF0001", Status: models.StatusDispatched}, nil)
		m.expectPostCommit(models.EventWaitlistFormRemoved)

		form, err := svc.DispatchWaitlisted(ctx, dispatcher, "ALRT0001")

		require.NoError(t, err)
		assert.Equal(t, models.StatusDispatched, form.Status)
	})

	t.Run("already dispatched", func(t *testing.T) {
		svc, m := newTestRescueService(t)

		m.forms.EXPECT().GetRescueForm(ctx, "ALRT0001").Return(&models.RescueForm{Status: models.StatusDispatched}, nil)

		_, err := svc.DispatchWaitlisted(ctx, dispatcher, "ALRT0001")

		require.Error(t, err)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, "Rescue Form is not Waitlisted", appErr.Message)
	})
}

func TestFixRescueFormStatus(t *testing.T) {
	t.Run("repairs drift", func(t *testing.T) {
		svc, m := newTestRescueService(t)

		m.forms.EXPECT().FixStatusDrift(ctx).Return([]string{"ALRT0002", "ALRT0005"}, nil)
		m.expectPostCommit("")

		result, err := svc.FixRescueFormStatus(ctx, admin)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Fixed)
		assert.Equal(t, []string{"ALRT0002", "ALRT0005"}, result.AlertIDs)
	})

	t.Run("nothing to fix", func(t *testing.T) {
		svc, m := newTestRescueService(t)

		m.forms.EXPECT().FixStatusDrift(ctx).Return(nil, nil)

		result, err := svc.FixRescueFormStatus(ctx, admin)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Fixed)
		assert.NotNil(t, result.AlertIDs)
	})

	t.Run("dispatcher forbidden", func(t *testing.T) {
		svc, _ := newTestRescueService(t)

		_, err := svc.FixRescueFormStatus(ctx, dispatcher)

		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})
}
