package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/rescue_coordination_system/internal/apperror"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Chart time ranges and the number of months each one covers.
var chartRanges = map[string]int{
	"last3months": 3,
	"last6months": 6,
	"lastyear":    12,
}

const defaultChartRange = "last6months"

// ReportService closes rescues with post-rescue forms and serves the
// cache-first report views.
type ReportService interface {
	CreatePostRescueForm(ctx context.Context, actor models.Actor, alertID string, form *models.PostRescueForm) (*models.PostRescueForm, error)
	ListPending(ctx context.Context, refresh bool) ([]*models.PendingReport, error)
	ListCompleted(ctx context.Context, refresh bool) ([]*models.CompletedReport, error)
	ListArchived(ctx context.Context, refresh bool) ([]*models.CompletedReport, error)
	Aggregated(ctx context.Context, filter models.ReportFilter, refresh bool) ([]*models.DetailedReport, error)
	TableAggregated(ctx context.Context, refresh bool) ([]*models.TerminalSummary, error)
	Chart(ctx context.Context, timeRange string, refresh bool) ([]*models.ChartPoint, error)
	DetailedReport(ctx context.Context, alertID string) (*models.DetailedReport, error)
	Archive(ctx context.Context, actor models.Actor, alertID string) error
	Restore(ctx context.Context, actor models.Actor, alertID string) error
	DeletePermanently(ctx context.Context, actor models.Actor, alertID string) error
	ClearCache(ctx context.Context, actor models.Actor) error
}

type reportService struct {
	alerts     AlertRepository
	forms      RescueFormRepository
	reports    ReportRepository
	cache      ReportCache
	postCommit *PostCommit
	logger     *logrus.Logger
	now        func() time.Time
}

func NewReportService(alerts AlertRepository, forms RescueFormRepository, reports ReportRepository, cache ReportCache, postCommit *PostCommit, logger *logrus.Logger) ReportService {
	return &reportService{
		alerts:     alerts,
		forms:      forms,
		reports:    reports,
		cache:      cache,
		postCommit: postCommit,
		logger:     logger,
		now:        time.Now,
	}
}

// CreatePostRescueForm closes a dispatched rescue.
func (s *reportService) CreatePostRescueForm(ctx context.Context, actor models.Actor, alertID string, form *models.PostRescueForm) (*models.PostRescueForm, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "CreatePostRescueForm",
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to create a post-rescue form")

	if err := authorize(actor, CapManageReports); err != nil {
		log.Warn("Actor is not allowed to create post-rescue forms")
		return nil, err
	}

	if _, err := s.alerts.GetAlert(ctx, alertID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperror.NotFound("Alert not found")
		}
		log.WithError(err).Error("Failed to get alert from repository")
		return nil, fmt.Errorf("service: could not get alert: %w", apperror.Internal(err))
	}

	rescue, err := s.forms.GetRescueForm(ctx, alertID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to get rescue form from repository")
		return nil, fmt.Errorf("service: could not get rescue form: %w", apperror.Internal(err))
	}
	if rescue == nil || !rescue.Status.ReachedDispatch() {
		log.Warn("Rescue has not been dispatched")
		return nil, apperror.BadRequest("Rescue must be Dispatched before a Post-Rescue Form can be created")
	}

	if _, err := s.reports.GetPostRescueForm(ctx, alertID); err == nil {
		log.Warn("Post-rescue form already exists")
		return nil, apperror.BadRequest("Post-Rescue Form Already Exists")
	} else if !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to get post-rescue form from repository")
		return nil, fmt.Errorf("service: could not get post-rescue form: %w", apperror.Internal(err))
	}

	form.AlertID = alertID
	form.CompletedAt = s.now().UTC()
	form.ArchivedAt = nil
	if err := s.reports.CreatePostRescueForm(ctx, form); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Warn("Post-rescue form created concurrently")
			return nil, apperror.Wrap(apperror.KindBadRequest, "Post-Rescue Form Already Exists", err)
		}
		log.WithError(err).Error("Failed to create post-rescue form in repository")
		return nil, fmt.Errorf("service: could not create post-rescue form: %w", apperror.Internal(err))
	}

	event := models.NewEvent(models.EventPostRescueCreated, form)
	s.postCommit.Run(ctx, &event)

	log.WithField("id", form.ID).Info("Post-rescue form created successfully")
	return form, nil
}

// ListPending returns rescues that have a rescue form but no report yet.
func (s *reportService) ListPending(ctx context.Context, refresh bool) ([]*models.PendingReport, error) {
	return cachedRead(ctx, s, CategoryPending, "", refresh, func() ([]*models.PendingReport, error) {
		rows, err := s.reports.ListPending(ctx)
		return nonNil(rows), err
	})
}

// ListCompleted returns unarchived reports.
func (s *reportService) ListCompleted(ctx context.Context, refresh bool) ([]*models.CompletedReport, error) {
	return cachedRead(ctx, s, CategoryCompleted, "", refresh, func() ([]*models.CompletedReport, error) {
		rows, err := s.reports.ListCompleted(ctx, models.ScopeActive)
		return nonNil(rows), err
	})
}

// ListArchived returns archived reports.
func (s *reportService) ListArchived(ctx context.Context, refresh bool) ([]*models.CompletedReport, error) {
	return cachedRead(ctx, s, CategoryArchived, "", refresh, func() ([]*models.CompletedReport, error) {
		rows, err := s.reports.ListCompleted(ctx, models.ScopeArchived)
		return nonNil(rows), err
	})
}

// Aggregated returns detailed rows, optionally for one alert or terminal.
func (s *reportService) Aggregated(ctx context.Context, filter models.ReportFilter, refresh bool) ([]*models.DetailedReport, error) {
	key := ""
	switch {
	case filter.AlertID != "":
		key = "alert:" + filter.AlertID
	case filter.TerminalID != "":
		key = "terminal:" + filter.TerminalID
	}
	return cachedRead(ctx, s, CategoryAggregated, key, refresh, func() ([]*models.DetailedReport, error) {
		rows, err := s.reports.ListDetailed(ctx, filter)
		return nonNil(rows), err
	})
}

// TableAggregated summarizes completed rescues per terminal.
func (s *reportService) TableAggregated(ctx context.Context, refresh bool) ([]*models.TerminalSummary, error) {
	return cachedRead(ctx, s, CategoryTableAggregated, "", refresh, func() ([]*models.TerminalSummary, error) {
		rows, err := s.reports.ListCompleted(ctx, models.ScopeAll)
		if err != nil {
			return nil, err
		}
		return summarizeByTerminal(rows), nil
	})
}

// Chart counts completed rescues per month for the selected range.
func (s *reportService) Chart(ctx context.Context, timeRange string, refresh bool) ([]*models.ChartPoint, error) {
	if timeRange == "" {
		timeRange = defaultChartRange
	}
	months, ok := chartRanges[timeRange]
	if !ok {
		return nil, apperror.BadRequest("timeRange must be one of last3months, last6months, lastyear")
	}

	return cachedRead(ctx, s, CategoryChart, timeRange, refresh, func() ([]*models.ChartPoint, error) {
		rows, err := s.reports.ListCompleted(ctx, models.ScopeAll)
		if err != nil {
			return nil, err
		}
		return monthlyChart(rows, s.now().UTC(), months), nil
	})
}

// DetailedReport returns the full report of one completed rescue.
func (s *reportService) DetailedReport(ctx context.Context, alertID string) (*models.DetailedReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "DetailedReport",
		"alert_id": alertID,
	})

	if !models.IsValidAlertID(alertID) {
		log.Warn("Malformed alert ID")
		return nil, apperror.BadRequest("Invalid alert ID")
	}

	report, err := s.reports.GetDetailed(ctx, alertID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, apperror.NotFound("Report not found")
		}
		log.WithError(err).Error("Failed to get detailed report from repository")
		return nil, fmt.Errorf("service: could not get detailed report: %w", apperror.Internal(err))
	}
	return report, nil
}

// Archive hides a report from the completed view.
func (s *reportService) Archive(ctx context.Context, actor models.Actor, alertID string) error {
	now := s.now().UTC()
	return s.setArchivedAt(ctx, actor, "Archive", alertID, &now)
}

// Restore moves an archived report back to the completed view.
func (s *reportService) Restore(ctx context.Context, actor models.Actor, alertID string) error {
	return s.setArchivedAt(ctx, actor, "Restore", alertID, nil)
}

func (s *reportService) setArchivedAt(ctx context.Context, actor models.Actor, method, alertID string, archivedAt *time.Time) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   method,
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to change report visibility")

	if err := authorize(actor, CapManageReports); err != nil {
		return err
	}

	if err := s.reports.SetArchivedAt(ctx, alertID, archivedAt); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Post-rescue form not found")
			return apperror.NotFound("Post-Rescue Form not found")
		}
		log.WithError(err).Error("Failed to update post-rescue form in repository")
		return fmt.Errorf("service: could not update post-rescue form: %w", apperror.Internal(err))
	}

	s.postCommit.Run(ctx, nil)
	log.Info("Report visibility changed")
	return nil
}

// DeletePermanently removes the post-rescue form only. The alert and rescue
// form keep their status.
func (s *reportService) DeletePermanently(ctx context.Context, actor models.Actor, alertID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "DeletePermanently",
		"alert_id": alertID,
		"actor":    actor.ID,
	})
	log.Info("Attempting to delete post-rescue form")

	if err := authorize(actor, CapAdminister); err != nil {
		return err
	}

	if err := s.reports.DeletePostRescueForm(ctx, alertID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return apperror.NotFound("Post-Rescue Form not found")
		}
		log.WithError(err).Error("Failed to delete post-rescue form in repository")
		return fmt.Errorf("service: could not delete post-rescue form: %w", apperror.Internal(err))
	}

	s.postCommit.Run(ctx, nil)
	log.Info("Post-rescue form deleted")
	return nil
}

// ClearCache wipes every report snapshot.
func (s *reportService) ClearCache(ctx context.Context, actor models.Actor) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ClearCache",
		"actor":   actor.ID,
	})

	if err := authorize(actor, CapAdminister); err != nil {
		return err
	}

	if err := s.cache.Clear(ctx); err != nil {
		log.WithError(err).Error("Failed to clear report cache")
		return fmt.Errorf("service: could not clear report cache: %w", apperror.Internal(err))
	}
	log.Info("Report cache cleared")
	return nil
}

// cachedRead serves category/key from the cache unless refresh is set, and
// stores what it loads from the store unless the category was invalidated
// meanwhile.
func cachedRead[T any](ctx context.Context, s *reportService, category, key string, refresh bool, load func() (T, error)) (T, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"category": category,
		"key":      key,
		"refresh":  refresh,
	})

	if !refresh {
		var cached T
		hit, err := s.cache.Get(ctx, category, key, &cached)
		if err != nil {
			log.WithError(err).Warn("Failed to read report cache")
		} else if hit {
			log.Debug("Report served from cache")
			return cached, nil
		}
	}

	// The generation is read before the store so a snapshot that raced a
	// mutation is never written after that mutation's invalidation.
	generation, genErr := s.cache.Generation(ctx, category)
	if genErr != nil {
		log.WithError(genErr).Warn("Failed to read report cache generation")
	}

	value, err := load()
	if err != nil {
		var zero T
		log.WithError(err).Error("Failed to load report from repository")
		return zero, fmt.Errorf("service: could not load %s report: %w", category, apperror.Internal(err))
	}

	if genErr != nil {
		return value, nil
	}
	stored, err := s.cache.Set(ctx, category, key, generation, value)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to store report in cache")
	case !stored:
		log.Debug("Report cache invalidated during load, snapshot not stored")
	}
	return value, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func summarizeByTerminal(rows []*models.CompletedReport) []*models.TerminalSummary {
	byTerminal := make(map[string]*models.TerminalSummary)
	for _, r := range rows {
		sum, ok := byTerminal[r.TerminalID]
		if !ok {
			sum = &models.TerminalSummary{TerminalID: r.TerminalID, TerminalName: r.TerminalName}
			byTerminal[r.TerminalID] = sum
		}
		sum.TotalRescues++
		sum.TotalPersonnel += r.NoOfPersonnelDeployed
		if r.AlertType == models.AlertTypeCritical {
			sum.CriticalCount++
		} else {
			sum.UserCount++
		}
		if sum.LastCompletedAt == nil || r.CompletedAt.After(*sum.LastCompletedAt) {
			completedAt := r.CompletedAt
			sum.LastCompletedAt = &completedAt
		}
	}

	out := make([]*models.TerminalSummary, 0, len(byTerminal))
	for _, sum := range byTerminal {
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TerminalID < out[j].TerminalID })
	return out
}

// monthlyChart buckets rows into the last n calendar months ending with the
// month of now, oldest first.
func monthlyChart(rows []*models.CompletedReport, now time.Time, n int) []*models.ChartPoint {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	points := make([]*models.ChartPoint, n)
	index := make(map[string]*models.ChartPoint, n)
	for i := 0; i < n; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		points[i] = &models.ChartPoint{Month: month}
		index[month] = points[i]
	}

	for _, r := range rows {
		p, ok := index[r.CompletedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		if r.AlertType == models.AlertTypeCritical {
			p.Critical++
		} else {
			p.UserInitiated++
		}
		p.Total++
	}
	return points
}
