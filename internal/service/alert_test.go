package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, serviceMocks) {
	m, postCommit, logger := newServiceMocks(t)
	svc := NewAlertService(m.alerts, m.terminals, postCommit, logger)
	return svc.(*alertService), m
}

func TestCreateCriticalAlert_Success(t *testing.T) {
	svc, m := newTestAlertService(t)

	m.terminals.EXPECT().GetTerminal(ctx, "TERM01").Return(&models.Terminal{
		TerminalID: "TERM01",
		Location:   `{"address":"Tumana","coordinates":"121.1,14.6"}`,
	}, nil)
	m.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			alert.AlertID = "ALRT0001"
			return nil
		})
	m.expectPostCommit(models.EventAlertCreated)

	alert, err := svc.CreateCriticalAlert(ctx, "TERM01", "sensor")

	require.NoError(t, err)
	assert.Equal(t, "ALRT0001", alert.AlertID)
	assert.Equal(t, models.AlertTypeCritical, alert.AlertType)
	assert.Equal(t, models.StatusUnassigned, alert.Status)

	loc, err := models.ParseLocation(alert.Location)
	require.NoError(t, err)
	assert.InDelta(t, 14.6, loc.Lat, 1e-9)
	assert.InDelta(t, 121.1, loc.Lng, 1e-9)
}

func TestCreateUserAlert_OwnLocationWins(t *testing.T) {
	svc, m := newTestAlertService(t)

	m.terminals.EXPECT().GetTerminal(ctx, "TERM01").Return(&models.Terminal{TerminalID: "TERM01", Location: `{"lat":1,"lng":2}`}, nil)
	m.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(nil)
	m.expectPostCommit(models.EventAlertCreated)

	alert, err := svc.CreateUserAlert(ctx, "TERM01", "button", `{"lat":"14.5","lng":"121.0","address":"Bridge"}`)

	require.NoError(t, err)
	assert.Equal(t, models.AlertTypeUserInitiated, alert.AlertType)
	loc, err := models.ParseLocation(alert.Location)
	require.NoError(t, err)
	assert.Equal(t, "Bridge", loc.Address)
	assert.InDelta(t, 14.5, loc.Lat, 1e-9)
}

func TestCreateAlert_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		terminalID string
		setup      func(m serviceMocks)
		message    string
	}{
		{
			name:       "missing terminal id",
			terminalID: "  ",
			setup:      func(serviceMocks) {},
			message:    "terminalID is required",
		},
		{
			name:       "unknown terminal",
			terminalID: "TERM99",
			setup: func(m serviceMocks) {
				m.terminals.EXPECT().GetTerminal(ctx, "TERM99").Return(nil, models.ErrNotFound)
			},
			message: "Terminal not found",
		},
		{
			name:       "archived terminal",
			terminalID: "TERM02",
			setup: func(m serviceMocks) {
				m.terminals.EXPECT().GetTerminal(ctx, "TERM02").Return(&models.Terminal{TerminalID: "TERM02", Archived: true}, nil)
			},
			message: "Terminal is archived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAlertService(t)
			tt.setup(m)
			m.alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.CreateCriticalAlert(ctx, tt.terminalID, "")

			require.Error(t, err)
			assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
			appErr, _ := apperror.As(err)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestGetAlert_NotFound(t *testing.T) {
	svc, m := newTestAlertService(t)

	m.alerts.EXPECT().GetAlert(ctx, "ALRT0404").Return(nil, models.ErrNotFound)

	_, err := svc.GetAlert(ctx, "ALRT0404")

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListUnassignedAlerts_FiltersByStatus(t *testing.T) {
	svc, m := newTestAlertService(t)
	expected := []*models.Alert{{AlertID: "ALRT0001", Status: models.StatusUnassigned}}

	m.alerts.EXPECT().ListAlerts(ctx, models.StatusUnassigned).Return(expected, nil)

	alerts, err := svc.ListUnassignedAlerts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestUpdateAlert_DispatchRequiresRescueForm(t *testing.T) {
	svc, m := newTestAlertService(t)
	update := models.AlertUpdate{Status: statusPtr(models.StatusDispatched)}

	m.alerts.EXPECT().UpdateAlert(ctx, "ALRT0001", update).
		Return(nil, false, fmt.Errorf("update alert ALRT0001: %w", models.ErrRescueFormRequired))
	m.expectNoPostCommit()

	_, err := svc.UpdateAlert(ctx, dispatcher, "ALRT0001", update)

	require.Error(t, err)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.True(t, errors.Is(err, models.ErrRescueFormRequired))
}

func TestUpdateAlert_StatusChangePublishes(t *testing.T) {
	svc, m := newTestAlertService(t)
	update := models.AlertUpdate{Status: statusPtr(models.StatusDispatched)}

	m.alerts.EXPECT().UpdateAlert(ctx, "ALRT0001", update).
		Return(&models.Alert{AlertID: "ALRT0001", Status: models.StatusDispatched}, true, nil)
	m.expectPostCommit(models.EventAlertStatusUpdate)

	alert, err := svc.UpdateAlert(ctx, dispatcher, "ALRT0001", update)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, alert.Status)
}

func TestUpdateAlert_NonStatusFieldsPublishNothing(t *testing.T) {
	svc, m := newTestAlertService(t)
	update := models.AlertUpdate{SentThrough: strPtr("sms")}

	m.alerts.EXPECT().UpdateAlert(ctx, "ALRT0001", update).
		Return(&models.Alert{AlertID: "ALRT0001", SentThrough: "sms", Status: models.StatusWaitlisted}, false, nil)
	m.expectPostCommit("")

	alert, err := svc.UpdateAlert(ctx, dispatcher, "ALRT0001", update)

	require.NoError(t, err)
	assert.Equal(t, "sms", alert.SentThrough)
}

func TestUpdateAlert_LocationNormalizedBeforeStore(t *testing.T) {
	svc, m := newTestAlertService(t)
	raw := `{"address":"Tumana","coordinates":"121.1,14.6"}`

	m.alerts.EXPECT().UpdateAlert(ctx, "ALRT0001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.AlertUpdate) (*models.Alert, bool, error) {
			require.NotNil(t, update.Location)
			loc, err := models.ParseLocation(*update.Location)
			require.NoError(t, err)
			assert.InDelta(t, 14.6, loc.Lat, 1e-9)
			assert.InDelta(t, 121.1, loc.Lng, 1e-9)
			return &models.Alert{AlertID: "ALRT0001", Location: *update.Location}, false, nil
		})
	m.expectPostCommit("")

	_, err := svc.UpdateAlert(ctx, dispatcher, "ALRT0001", models.AlertUpdate{Location: &raw})

	require.NoError(t, err)
}

func TestUpdateAlert_NotFound(t *testing.T) {
	svc, m := newTestAlertService(t)
	update := models.AlertUpdate{SentThrough: strPtr("sms")}

	m.alerts.EXPECT().UpdateAlert(ctx, "ALRT0404", update).
		Return(nil, false, fmt.Errorf("alert ALRT0404: %w", models.ErrNotFound))
	m.expectNoPostCommit()

	_, err := svc.UpdateAlert(ctx, dispatcher, "ALRT0404", update)

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateAlert_FocalForbidden(t *testing.T) {
	svc, m := newTestAlertService(t)

	m.alerts.EXPECT().UpdateAlert(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAlert(ctx, focal, "ALRT0001", models.AlertUpdate{Status: statusPtr(models.StatusWaitlisted)})

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestMigrateAlertTypes(t *testing.T) {
	svc, m := newTestAlertService(t)

	m.alerts.EXPECT().RawAlertTypes(ctx).Return(map[string]string{
		"ALRT0001": "Critical",
		"ALRT0002": "critical",
		"ALRT0003": "user",
		"ALRT0004": "unknown-kind",
	}, nil)
	m.alerts.EXPECT().SetAlertType(ctx, "ALRT0002", models.AlertTypeCritical).Return(nil)
	m.alerts.EXPECT().SetAlertType(ctx, "ALRT0003", models.AlertTypeUserInitiated).Return(nil)
	m.expectPostCommit("")

	count, err := svc.MigrateAlertTypes(ctx, admin)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMigrateAlertTypes_AdminOnly(t *testing.T) {
	svc, _ := newTestAlertService(t)

	_, err := svc.MigrateAlertTypes(ctx, dispatcher)

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
