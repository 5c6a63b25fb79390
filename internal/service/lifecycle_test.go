package service_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/cache"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/realtime"
	"github.com/shenikar/rescue_coordination_system/internal/repository/memory"
	"github.com/shenikar/rescue_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dispatcher = models.Actor{ID: "dispatcher-1", Role: models.RoleDispatcher}
	admin      = models.Actor{ID: "admin-1", Role: models.RoleAdmin}
)

type engine struct {
	store   *memory.Store
	cache   *cache.Memory
	hub     *realtime.Hub
	alerts  service.AlertService
	rescue  service.RescueService
	reports service.ReportService
}

func newEngine(t *testing.T) *engine {
	store := memory.NewStore()
	store.SeedDemo()
	return newEngineOver(t, store, store, store)
}

// newEngineOver wires the services over store, letting a test wrap the
// alert and report repositories.
func newEngineOver(t *testing.T, store *memory.Store, alerts service.AlertRepository, reports service.ReportRepository) *engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	reportCache := cache.NewMemory()
	hub := realtime.NewHub(64, logger)
	t.Cleanup(hub.Close)

	postCommit := service.NewPostCommit(reportCache, hub, logger)
	return &engine{
		store:   store,
		cache:   reportCache,
		hub:     hub,
		alerts:  service.NewAlertService(alerts, store, postCommit, logger),
		rescue:  service.NewRescueService(store, store, postCommit, logger),
		reports: service.NewReportService(store, store, reports, reportCache, postCommit, logger),
	}
}

// alertsWithWriteBefore runs before once, just ahead of the first
// UpdateAlert it delegates.
type alertsWithWriteBefore struct {
	*memory.Store
	once   sync.Once
	before func()
}

func (a *alertsWithWriteBefore) UpdateAlert(ctx context.Context, alertID string, update models.AlertUpdate) (*models.Alert, bool, error) {
	if a.before != nil {
		a.once.Do(a.before)
	}
	return a.Store.UpdateAlert(ctx, alertID, update)
}

// reportsWithWriteAfterRead runs after once, between the store read of the
// first ListCompleted and its return.
type reportsWithWriteAfterRead struct {
	*memory.Store
	once  sync.Once
	after func()
}

func (r *reportsWithWriteAfterRead) ListCompleted(ctx context.Context, scope models.ArchiveScope) ([]*models.CompletedReport, error) {
	rows, err := r.Store.ListCompleted(ctx, scope)
	if r.after != nil {
		r.once.Do(r.after)
	}
	return rows, err
}

// dispatched drives a fresh critical alert to Dispatched.
func (e *engine) dispatched(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "sensor")
	require.NoError(t, err)
	_, err = e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{
		FocalUnreachable: true,
		Status:           models.StatusDispatched,
	})
	require.NoError(t, err)
	return alert.AlertID
}

// completed drives a fresh critical alert to Completed.
func (e *engine) completed(t *testing.T) string {
	t.Helper()
	alertID := e.dispatched(t)
	_, err := e.reports.CreatePostRescueForm(context.Background(), dispatcher, alertID, &models.PostRescueForm{NoOfPersonnelDeployed: 3})
	require.NoError(t, err)
	return alertID
}

func TestConcurrentRescueFormCreation(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	alert, err := e.alerts.CreateUserAlert(ctx, "TERM02", "button", "")
	require.NoError(t, err)

	const writers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{FocalUnreachable: true})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperror.KindOf(err) == apperror.KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)

	waitlisted, err := e.rescue.ListWaitlisted(ctx)
	require.NoError(t, err)
	assert.Len(t, waitlisted, 1)
}

func TestConcurrentPostRescueFormCreation(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.dispatched(t)

	const writers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := e.reports.CreatePostRescueForm(ctx, dispatcher, alertID, &models.PostRescueForm{NoOfPersonnelDeployed: 2})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperror.KindOf(err) == apperror.KindBadRequest && strings.Contains(err.Error(), "Already Exists"):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, duplicates)

	completed, err := e.reports.ListCompleted(ctx, true)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, alertID, completed[0].AlertID)
}

func TestAlertIDsAreSequential(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	first, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "")
	require.NoError(t, err)
	second, err := e.alerts.CreateUserAlert(ctx, "TERM01", "", "")
	require.NoError(t, err)

	assert.True(t, models.IsValidAlertID(first.AlertID))
	assert.NotEqual(t, first.AlertID, second.AlertID)

	alert, err := e.alerts.GetAlert(ctx, second.AlertID)
	require.NoError(t, err)
	loc, err := models.ParseLocation(alert.Location)
	require.NoError(t, err)
	assert.Equal(t, "Brgy. Tumana, Marikina", loc.Address)
}

func TestStatusStaysInStepAcrossWritePaths(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "")
	require.NoError(t, err)
	_, err = e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{FocalUnreachable: true})
	require.NoError(t, err)

	// generic alert update mirrors onto the form
	_, err = e.alerts.UpdateAlert(ctx, dispatcher, alert.AlertID, models.AlertUpdate{Status: statusPtr(models.StatusDispatched)})
	require.NoError(t, err)
	form, err := e.rescue.GetRescueForm(ctx, alert.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, form.Status)

	// moving backwards through the rescue endpoint mirrors onto the alert
	_, err = e.rescue.UpdateRescueFormStatus(ctx, admin, alert.AlertID, models.StatusWaitlisted)
	require.NoError(t, err)
	got, err := e.alerts.GetAlert(ctx, alert.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaitlisted, got.Status)

	_, err = e.rescue.DispatchWaitlisted(ctx, dispatcher, alert.AlertID)
	require.NoError(t, err)
	got, err = e.alerts.GetAlert(ctx, alert.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, got.Status)
}

func TestAlertFieldEditDoesNotOverwriteConcurrentDispatch(t *testing.T) {
	store := memory.NewStore()
	store.SeedDemo()
	alerts := &alertsWithWriteBefore{Store: store}
	e := newEngineOver(t, store, alerts, store)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "sensor")
	require.NoError(t, err)
	_, err = e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{FocalUnreachable: true})
	require.NoError(t, err)

	alerts.before = func() {
		_, err := e.rescue.UpdateRescueFormStatus(ctx, dispatcher, alert.AlertID, models.StatusDispatched)
		require.NoError(t, err)
	}
	radio := "radio"
	updated, err := e.alerts.UpdateAlert(ctx, dispatcher, alert.AlertID, models.AlertUpdate{SentThrough: &radio})
	require.NoError(t, err)
	assert.Equal(t, "radio", updated.SentThrough)

	got, err := e.alerts.GetAlert(ctx, alert.AlertID)
	require.NoError(t, err)
	form, err := e.rescue.GetRescueForm(ctx, alert.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, got.Status)
	assert.Equal(t, models.StatusDispatched, form.Status)
}

func TestAlertStatusEditSeesConcurrentRescueForm(t *testing.T) {
	store := memory.NewStore()
	store.SeedDemo()
	alerts := &alertsWithWriteBefore{Store: store}
	e := newEngineOver(t, store, alerts, store)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "sensor")
	require.NoError(t, err)

	alerts.before = func() {
		_, err := e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{FocalUnreachable: true})
		require.NoError(t, err)
	}
	_, err = e.alerts.UpdateAlert(ctx, dispatcher, alert.AlertID, models.AlertUpdate{Status: statusPtr(models.StatusUnassigned)})
	require.Error(t, err)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.ErrorIs(t, err, models.ErrRescueFormForbidden)

	got, err := e.alerts.GetAlert(ctx, alert.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaitlisted, got.Status)
}

func TestPostRescueCompletesBothRecords(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.completed(t)

	alert, err := e.alerts.GetAlert(ctx, alertID)
	require.NoError(t, err)
	form, err := e.rescue.GetRescueForm(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, alert.Status)
	assert.Equal(t, models.StatusCompleted, form.Status)

	pending, err := e.reports.ListPending(ctx, true)
	require.NoError(t, err)
	for _, p := range pending {
		assert.NotEqual(t, alertID, p.AlertID)
	}

	report, err := e.reports.DetailedReport(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, "Tumana Riverside", report.TerminalName)
	assert.Equal(t, "Maria Santos", report.FocalPersonName)
	assert.Equal(t, 3, report.PostRescueForm.NoOfPersonnelDeployed)
}

func TestPostRescueRequiresDispatch(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "")
	require.NoError(t, err)
	_, err = e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{FocalUnreachable: true})
	require.NoError(t, err)

	_, err = e.reports.CreatePostRescueForm(ctx, dispatcher, alert.AlertID, &models.PostRescueForm{NoOfPersonnelDeployed: 1})

	require.Error(t, err)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "Dispatched")
}

func TestMissingCoreFieldsRejected(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "")
	require.NoError(t, err)

	water := "knee"
	_, err = e.rescue.CreateRescueForm(ctx, dispatcher, alert.AlertID, &models.RescueForm{WaterLevel: &water})

	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	_, err = e.rescue.GetRescueForm(ctx, alert.AlertID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestArchiveRestoreKeepsCompletedAt(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.completed(t)

	before, err := e.reports.DetailedReport(ctx, alertID)
	require.NoError(t, err)

	require.NoError(t, e.reports.Archive(ctx, dispatcher, alertID))

	archived, err := e.reports.ListArchived(ctx, false)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.NotNil(t, archived[0].ArchivedAt)

	completed, err := e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, completed)

	require.NoError(t, e.reports.Restore(ctx, dispatcher, alertID))

	after, err := e.reports.DetailedReport(ctx, alertID)
	require.NoError(t, err)
	assert.Nil(t, after.PostRescueForm.ArchivedAt)
	assert.True(t, before.PostRescueForm.CompletedAt.Equal(after.PostRescueForm.CompletedAt))
}

func TestDeletePermanentlyLeavesStatus(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.completed(t)

	require.NoError(t, e.reports.DeletePermanently(ctx, admin, alertID))

	alert, err := e.alerts.GetAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, alert.Status)

	_, err = e.reports.DetailedReport(ctx, alertID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = e.reports.DeletePermanently(ctx, admin, alertID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestMutationsInvalidateReportCache(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	completed, err := e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.Positive(t, e.cache.Len())

	alertID := e.completed(t)

	completed, err = e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, alertID, completed[0].AlertID)
}

func TestRefreshBypassesStaleCache(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.completed(t)

	// plant a stale snapshot behind the service's back
	gen, err := e.cache.Generation(ctx, service.CategoryCompleted)
	require.NoError(t, err)
	stored, err := e.cache.Set(ctx, service.CategoryCompleted, "", gen, []*models.CompletedReport{})
	require.NoError(t, err)
	require.True(t, stored)

	stale, err := e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := e.reports.ListCompleted(ctx, true)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, alertID, fresh[0].AlertID)

	// the refreshed value replaced the stale snapshot
	cached, err := e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestReadRacingMutationDoesNotCacheStaleRows(t *testing.T) {
	store := memory.NewStore()
	store.SeedDemo()
	reports := &reportsWithWriteAfterRead{Store: store}
	e := newEngineOver(t, store, store, reports)
	ctx := context.Background()
	alertID := e.dispatched(t)

	reports.after = func() {
		_, err := e.reports.CreatePostRescueForm(ctx, dispatcher, alertID, &models.PostRescueForm{NoOfPersonnelDeployed: 4})
		require.NoError(t, err)
	}

	// this read loaded its rows before the report was filed
	raced, err := e.reports.ListCompleted(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, raced)

	for i := 0; i < 3; i++ {
		rows, err := e.reports.ListCompleted(ctx, false)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, alertID, rows[0].AlertID)
	}
}

func TestFixRescueFormStatusIsIdempotent(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	alertID := e.dispatched(t)

	// knock the alert out of step without touching the form
	alert, err := e.alerts.GetAlert(ctx, alertID)
	require.NoError(t, err)
	alert.Status = models.StatusUnassigned
	e.store.PutAlert(*alert)

	result, err := e.rescue.FixRescueFormStatus(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Fixed)
	assert.Equal(t, []string{alertID}, result.AlertIDs)

	alert, err = e.alerts.GetAlert(ctx, alertID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, alert.Status)

	again, err := e.rescue.FixRescueFormStatus(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Fixed)
	assert.Empty(t, again.AlertIDs)
}

func TestEventsFollowCommits(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	_, frames, err := e.hub.Subscribe()
	require.NoError(t, err)

	alertID := e.completed(t)
	require.NoError(t, e.reports.Archive(ctx, dispatcher, alertID))

	var got []string
	for len(frames) > 0 {
		got = append(got, string(<-frames))
	}
	require.Len(t, got, 3)
	assert.Contains(t, got[0], string(models.EventAlertCreated))
	assert.Contains(t, got[1], string(models.EventRescueFormCreated))
	assert.Contains(t, got[2], string(models.EventPostRescueCreated))
}

func TestAlertFieldEditPublishesNoStatusEvent(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	alert, err := e.alerts.CreateCriticalAlert(ctx, "TERM01", "sensor")
	require.NoError(t, err)

	_, frames, err := e.hub.Subscribe()
	require.NoError(t, err)

	radio := "radio"
	_, err = e.alerts.UpdateAlert(ctx, dispatcher, alert.AlertID, models.AlertUpdate{SentThrough: &radio})
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = e.alerts.UpdateAlert(ctx, dispatcher, alert.AlertID, models.AlertUpdate{Status: statusPtr(models.StatusWaitlisted)})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Contains(t, string(<-frames), string(models.EventAlertStatusUpdate))
}

func statusPtr(s models.Status) *models.Status { return &s }
