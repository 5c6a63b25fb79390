package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/config"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/realtime"
	"github.com/shenikar/rescue_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "test-jwt-secret"

type testMocks struct {
	alerts  *mocks.MockAlertService
	rescue  *mocks.MockRescueService
	reports *mocks.MockReportService
}

// newTestHandler builds a Handler over mocked services and a router with
// every v1 route registered.
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		alerts:  mocks.NewMockAlertService(ctrl),
		rescue:  mocks.NewMockRescueService(ctrl),
		reports: mocks.NewMockReportService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		APIKeys:            []string{"test-api-key"},
		JWTSecret:          testJWTSecret,
		UserAlertRateLimit: 100,
	}

	hub := realtime.NewHub(8, logger)
	t.Cleanup(hub.Close)

	handler := NewHandler(m.alerts, m.rescue, m.reports, hub, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest performs a request against router and records the response.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func signToken(t *testing.T, secret, subject string, role models.Role) string {
	t.Helper()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func bearer(t *testing.T, subject string, role models.Role) map[string]string {
	return map[string]string{"Authorization": "Bearer " + signToken(t, testJWTSecret, subject, role)}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCreateCriticalAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alert := &models.Alert{AlertID: "ALRT0001", TerminalID: "TERM01", AlertType: models.AlertTypeCritical, Status: models.StatusUnassigned}

	m.alerts.EXPECT().CreateCriticalAlert(gomock.Any(), "TERM01", "sensor").Return(alert, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/critical",
		jsonBody(t, CreateAlertRequest{TerminalID: "TERM01", SentThrough: "sensor"}),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ALRT0001", resp.Alert.AlertID)
}

func TestCreateCriticalAlert_Unauthorized(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/critical", jsonBody(t, CreateAlertRequest{TerminalID: "TERM01"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/alerts/critical", jsonBody(t, CreateAlertRequest{TerminalID: "TERM01"}),
		map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCriticalAlert_MissingTerminalID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/critical", jsonBody(t, map[string]string{}),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "BadRequest", resp.Kind)
	assert.Equal(t, "terminalId is required", resp.Message)
}

func TestCreateCriticalAlert_ArchivedTerminal(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().CreateCriticalAlert(gomock.Any(), "TERM09", "").Return(nil, apperror.BadRequest("Terminal is archived"))

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/critical", jsonBody(t, CreateAlertRequest{TerminalID: "TERM09"}),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Terminal is archived", decodeError(t, w).Message)
}

func TestCreateUserAlert_LocationObject(t *testing.T) {
	_, m, router := newTestHandler(t)
	body := `{"terminalId":"TERM01","sentThrough":"button","location":{"lat":14.6,"lng":121.0,"address":"Tumana"}}`

	m.alerts.EXPECT().
		CreateUserAlert(gomock.Any(), "TERM01", "button", `{"lat":14.6,"lng":121.0,"address":"Tumana"}`).
		Return(&models.Alert{AlertID: "ALRT0002", AlertType: models.AlertTypeUserInitiated}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/user", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUserAlert_LocationString(t *testing.T) {
	_, m, router := newTestHandler(t)
	body := `{"terminalId":"TERM01","location":"{\"address\":\"Tumana\",\"coordinates\":\"121.0,14.6\"}"}`

	m.alerts.EXPECT().
		CreateUserAlert(gomock.Any(), "TERM01", "", `{"address":"Tumana","coordinates":"121.0,14.6"}`).
		Return(&models.Alert{AlertID: "ALRT0003"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/user", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUserAlert_RateLimited(t *testing.T) {
	h, m, _ := newTestHandler(t)
	h.cfg.UserAlertRateLimit = 1

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	m.alerts.EXPECT().CreateUserAlert(gomock.Any(), "TERM01", "", "").Return(&models.Alert{AlertID: "ALRT0004"}, nil).Times(1)

	first := makeRequest(router, http.MethodPost, "/api/v1/alerts/user", jsonBody(t, CreateUserAlertRequest{TerminalID: "TERM01"}))
	second := makeRequest(router, http.MethodPost, "/api/v1/alerts/user", jsonBody(t, CreateUserAlertRequest{TerminalID: "TERM01"}))

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestJWTAuth(t *testing.T) {
	_, m, router := newTestHandler(t)

	t.Run("missing token", func(t *testing.T) {
		w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", "u1", models.RoleAdmin)
		w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, bearer(t, "u1", models.Role("janitor")))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("query token", func(t *testing.T) {
		m.alerts.EXPECT().ListAlerts(gomock.Any()).Return([]*models.Alert{}, nil)
		token := signToken(t, testJWTSecret, "u1", models.RoleFocal)
		w := makeRequest(router, http.MethodGet, "/api/v1/alerts?token="+token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetAlert_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().GetAlert(gomock.Any(), "ALRT9999").Return(nil, apperror.NotFound("Alert not found"))

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/ALRT9999", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NotFound", resp.Kind)
	assert.Equal(t, "Alert not found", resp.Message)
}

func TestListUnassignedAlerts_RoutesBeforeParam(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().ListUnassignedAlerts(gomock.Any()).Return([]*models.Alert{{AlertID: "ALRT0001"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/unassigned", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAlert_DispatchWithoutForm(t *testing.T) {
	_, m, router := newTestHandler(t)
	actor := models.Actor{ID: "d1", Role: models.RoleDispatcher}

	m.alerts.EXPECT().
		UpdateAlert(gomock.Any(), actor, "ALRT0001", gomock.Any()).
		DoAndReturn(func(_ any, _ models.Actor, _ string, update models.AlertUpdate) (*models.Alert, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, models.StatusDispatched, *update.Status)
			assert.Nil(t, update.Location)
			return nil, apperror.BadRequest("Rescue Form must be created before dispatching")
		})

	w := makeRequest(router, http.MethodPatch, "/api/v1/alerts/ALRT0001",
		bytes.NewBufferString(`{"status":"Dispatched"}`), bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rescue Form must be created before dispatching", decodeError(t, w).Message)
}

func TestCreateRescueForm(t *testing.T) {
	water := "Knee-deep"

	t.Run("created", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		actor := models.Actor{ID: "d1", Role: models.RoleDispatcher}

		m.rescue.EXPECT().
			CreateRescueForm(gomock.Any(), actor, "ALRT0001", gomock.Any()).
			DoAndReturn(func(_ any, _ models.Actor, alertID string, form *models.RescueForm) (*models.RescueForm, error) {
				assert.True(t, form.FocalUnreachable)
				form.FormID = "RF0001"
				form.AlertID = alertID
				form.Status = models.StatusWaitlisted
				return form, nil
			})

		w := makeRequest(router, http.MethodPost, "/api/v1/rescue-forms/ALRT0001",
			jsonBody(t, CreateRescueFormRequest{FocalUnreachable: true, WaterLevel: &water}), bearer(t, "d1", models.RoleDispatcher))

		assert.Equal(t, http.StatusCreated, w.Code)
		var form models.RescueForm
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
		assert.Equal(t, "RF0001", form.FormID)
		assert.Equal(t, models.StatusWaitlisted, form.Status)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rescue.EXPECT().CreateRescueForm(gomock.Any(), gomock.Any(), "ALRT0001", gomock.Any()).
			Return(nil, apperror.Conflict("Rescue Form Already Exists"))

		w := makeRequest(router, http.MethodPost, "/api/v1/rescue-forms/ALRT0001",
			jsonBody(t, CreateRescueFormRequest{FocalUnreachable: true}), bearer(t, "d1", models.RoleDispatcher))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Conflict", decodeError(t, w).Kind)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		m.rescue.EXPECT().CreateRescueForm(gomock.Any(), models.Actor{ID: "a1", Role: models.RoleAdmin}, "ALRT0001", gomock.Any()).
			Return(nil, apperror.Forbidden("Only a dispatcher can create a rescue form"))

		w := makeRequest(router, http.MethodPost, "/api/v1/rescue-forms/ALRT0001",
			jsonBody(t, CreateRescueFormRequest{FocalUnreachable: true}), bearer(t, "a1", models.RoleAdmin))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListWaitlisted_RoutesBeforeParam(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.rescue.EXPECT().ListWaitlisted(gomock.Any()).Return([]*models.RescueForm{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/rescue-forms/waitlisted", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateRescueFormStatus_MissingStatus(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPatch, "/api/v1/rescue-forms/ALRT0001/status",
		bytes.NewBufferString(`{}`), bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status is required", decodeError(t, w).Message)
}

func TestDispatchWaitlisted(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.rescue.EXPECT().DispatchWaitlisted(gomock.Any(), gomock.Any(), "ALRT0001").
		Return(&models.RescueForm{FormID: "RF0001", AlertID: "ALRT0001", Status: models.StatusDispatched}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/rescue-forms/ALRT0001/dispatch", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePostRescueForm(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		CreatePostRescueForm(gomock.Any(), gomock.Any(), "ALRT0001", gomock.Any()).
		DoAndReturn(func(_ any, _ models.Actor, alertID string, form *models.PostRescueForm) (*models.PostRescueForm, error) {
			assert.Equal(t, 4, form.NoOfPersonnelDeployed)
			form.ID = "PRF0001"
			form.AlertID = alertID
			return form, nil
		})

	personnel := 4
	w := makeRequest(router, http.MethodPost, "/api/v1/post-rescue/ALRT0001",
		jsonBody(t, CreatePostRescueFormRequest{NoOfPersonnelDeployed: &personnel, ResourcesUsed: "boat", ActionTaken: "evacuated"}),
		bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp PostRescueFormResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PRF0001", resp.NewForm.ID)
	assert.NotEmpty(t, resp.Message)
}

func TestCreatePostRescueForm_MissingPersonnel(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/post-rescue/ALRT0001",
		bytes.NewBufferString(`{"resourcesUsed":"boat"}`), bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "noOfPersonnelDeployed is required", decodeError(t, w).Message)
}

func TestReportLists_PassRefresh(t *testing.T) {
	_, m, router := newTestHandler(t)
	auth := bearer(t, "d1", models.RoleDispatcher)

	m.reports.EXPECT().ListPending(gomock.Any(), true).Return([]*models.PendingReport{}, nil)
	m.reports.EXPECT().ListCompleted(gomock.Any(), false).Return([]*models.CompletedReport{}, nil)
	m.reports.EXPECT().ListArchived(gomock.Any(), false).Return([]*models.CompletedReport{}, nil)

	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, "/api/v1/post-rescue/pending?refresh=true", nil, auth).Code)
	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, "/api/v1/post-rescue/completed", nil, auth).Code)
	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, "/api/v1/post-rescue/archived?refresh=nope", nil, auth).Code)
}

func TestAggregated_Filter(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		Aggregated(gomock.Any(), models.ReportFilter{TerminalID: "TERM01"}, false).
		Return([]*models.DetailedReport{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/post-rescue/aggregated?terminalId=TERM01", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChart_InvalidRange(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().Chart(gomock.Any(), "forever", false).Return(nil, apperror.BadRequest("Invalid time range"))

	w := makeRequest(router, http.MethodGet, "/api/v1/post-rescue/chart?timeRange=forever", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArchiveAndRestore(t *testing.T) {
	_, m, router := newTestHandler(t)
	auth := bearer(t, "d1", models.RoleDispatcher)

	m.reports.EXPECT().Archive(gomock.Any(), gomock.Any(), "ALRT0001").Return(nil)
	m.reports.EXPECT().Restore(gomock.Any(), gomock.Any(), "ALRT0001").Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/post-rescue/archive/ALRT0001", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Archived"}`, w.Body.String())

	w = makeRequest(router, http.MethodPost, "/api/v1/post-rescue/restore/ALRT0001", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Restored"}`, w.Body.String())
}

func TestDeletePermanently_Forbidden(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().DeletePermanently(gomock.Any(), models.Actor{ID: "d1", Role: models.RoleDispatcher}, "ALRT0001").
		Return(apperror.Forbidden("Only an admin can perform this action"))

	w := makeRequest(router, http.MethodDelete, "/api/v1/post-rescue/ALRT0001", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInternalErrorIsHidden(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().DetailedReport(gomock.Any(), "ALRT0001").
		Return(nil, errors.New("pq: connection refused to 10.0.0.5"))

	w := makeRequest(router, http.MethodGet, "/api/v1/post-rescue/report/ALRT0001", nil, bearer(t, "d1", models.RoleDispatcher))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "InternalServerError", resp.Kind)
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestMaintenance(t *testing.T) {
	_, m, router := newTestHandler(t)
	auth := bearer(t, "a1", models.RoleAdmin)

	m.rescue.EXPECT().FixRescueFormStatus(gomock.Any(), models.Actor{ID: "a1", Role: models.RoleAdmin}).
		Return(&models.FixResult{Fixed: 1, AlertIDs: []string{"ALRT0001"}}, nil)
	m.alerts.EXPECT().MigrateAlertTypes(gomock.Any(), gomock.Any()).Return(3, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/maintenance/fix-rescue-form-status", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fixed":1,"alertIds":["ALRT0001"]}`, w.Body.String())

	w = makeRequest(router, http.MethodPost, "/api/v1/maintenance/migrate-alert-types", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updatedCount":3}`, w.Body.String())
}
