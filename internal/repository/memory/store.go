// Package memory is an in-process store used for demos and tests. A single
// mutex makes every multi-record write atomic, matching the transactional
// guarantees of the Postgres repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

type Store struct {
	mu sync.RWMutex

	terminals map[string]models.Terminal
	focal     map[string]models.FocalPerson
	alerts    map[string]*models.Alert
	forms     map[string]*models.RescueForm
	reports   map[string]*models.PostRescueForm

	alertSeq  int64
	formSeq   int64
	reportSeq int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		terminals: make(map[string]models.Terminal),
		focal:     make(map[string]models.FocalPerson),
		alerts:    make(map[string]*models.Alert),
		forms:     make(map[string]*models.RescueForm),
		reports:   make(map[string]*models.PostRescueForm),
		now:       time.Now,
	}
}

// AddTerminal registers a terminal and, optionally, its focal person.
func (s *Store) AddTerminal(t models.Terminal, focal *models.FocalPerson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if focal != nil {
		focal.TerminalID = t.TerminalID
		t.FocalPersonID = focal.ID
		s.focal[focal.ID] = *focal
	}
	s.terminals[t.TerminalID] = t
}

// SeedDemo registers the demo terminals shipped with the SQL migrations.
func (s *Store) SeedDemo() {
	s.AddTerminal(
		models.Terminal{TerminalID: "TERM01", Name: "Tumana Riverside", Location: `{"lat":14.6571,"lng":121.0963,"address":"Brgy. Tumana, Marikina"}`},
		&models.FocalPerson{ID: "FP0001", FirstName: "Maria", LastName: "Santos", Contact: "+639170000001"},
	)
	s.AddTerminal(
		models.Terminal{TerminalID: "TERM02", Name: "Malanday Creek", Location: `{"address":"Brgy. Malanday, Marikina","coordinates":"121.0958,14.6610"}`},
		&models.FocalPerson{ID: "FP0002", FirstName: "Jose", LastName: "Reyes", Contact: "+639170000002"},
	)
}

func (s *Store) GetTerminal(_ context.Context, terminalID string) (*models.Terminal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terminals[terminalID]
	if !ok {
		return nil, fmt.Errorf("terminal %s: %w", terminalID, models.ErrNotFound)
	}
	return &t, nil
}

func (s *Store) CreateAlert(_ context.Context, alert *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertSeq++
	alert.AlertID = models.FormatID(models.AlertIDPrefix, s.alertSeq)
	alert.CreatedAt = s.now().UTC()
	stored := *alert
	s.alerts[alert.AlertID] = &stored
	return nil
}

func (s *Store) GetAlert(_ context.Context, alertID string) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[alertID]
	if !ok {
		return nil, fmt.Errorf("alert %s: %w", alertID, models.ErrNotFound)
	}
	out := *a
	return &out, nil
}

func (s *Store) ListAlerts(_ context.Context, status models.Status) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if status != "" && a.Status != status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[j].AlertID, out[i].AlertID) })
	return out, nil
}

// UpdateAlert applies update under the store lock, so the rescue form check,
// the transition and both writes see one state.
func (s *Store) UpdateAlert(_ context.Context, alertID string, update models.AlertUpdate) (*models.Alert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.alerts[alertID]
	if !ok {
		return nil, false, fmt.Errorf("alert %s: %w", alertID, models.ErrNotFound)
	}

	next := *stored
	if update.SentThrough != nil {
		next.SentThrough = *update.SentThrough
	}
	if update.Location != nil {
		next.Location = *update.Location
	}

	statusChanged := false
	form, hasForm := s.forms[alertID]
	if update.Status != nil && *update.Status != stored.Status {
		status, err := models.Transition(*update.Status, hasForm)
		if err != nil {
			return nil, false, fmt.Errorf("update alert %s: %w", alertID, err)
		}
		next.Status = status
		statusChanged = true
		if hasForm {
			form.Status = status
		}
	}

	*stored = next
	out := next
	return &out, statusChanged, nil
}

// PutAlert stores alert exactly as given, bypassing the lifecycle rules. It
// loads records exported from another system.
func (s *Store) PutAlert(alert models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts[alert.AlertID] = &alert
}

func (s *Store) RawAlertTypes(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.alerts))
	for id, a := range s.alerts {
		out[id] = string(a.AlertType)
	}
	return out, nil
}

func (s *Store) SetAlertType(_ context.Context, alertID string, alertType models.AlertType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[alertID]
	if !ok {
		return fmt.Errorf("alert %s: %w", alertID, models.ErrNotFound)
	}
	a.AlertType = alertType
	return nil
}

func (s *Store) CreateRescueForm(_ context.Context, form *models.RescueForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[form.AlertID]
	if !ok {
		return fmt.Errorf("alert %s: %w", form.AlertID, models.ErrNotFound)
	}
	if _, exists := s.forms[form.AlertID]; exists {
		return fmt.Errorf("rescue form for %s: %w", form.AlertID, models.ErrDuplicate)
	}
	s.formSeq++
	form.FormID = models.FormatID(models.RescueFormIDPrefix, s.formSeq)
	form.CreatedAt = s.now().UTC()
	stored := *form
	s.forms[form.AlertID] = &stored
	a.Status = form.Status
	return nil
}

func (s *Store) GetRescueForm(_ context.Context, alertID string) (*models.RescueForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.forms[alertID]
	if !ok {
		return nil, fmt.Errorf("rescue form for %s: %w", alertID, models.ErrNotFound)
	}
	out := *f
	return &out, nil
}

func (s *Store) SetRescueStatus(_ context.Context, alertID string, status models.Status) (*models.RescueForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.forms[alertID]
	if !ok {
		return nil, fmt.Errorf("rescue form for %s: %w", alertID, models.ErrNotFound)
	}
	a, ok := s.alerts[alertID]
	if !ok {
		return nil, fmt.Errorf("alert %s: %w", alertID, models.ErrNotFound)
	}
	f.Status = status
	a.Status = status
	out := *f
	return &out, nil
}

func (s *Store) ListRescueForms(_ context.Context, status models.Status) ([]*models.RescueForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.RescueForm, 0)
	for _, f := range s.forms {
		if status != "" && f.Status != status {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].FormID, out[j].FormID) })
	return out, nil
}

func (s *Store) FixStatusDrift(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fixed := make([]string, 0)
	for alertID, f := range s.forms {
		a, ok := s.alerts[alertID]
		if !ok {
			continue
		}
		_, hasReport := s.reports[alertID]
		target := models.ReconciledStatus(f.Status, hasReport)
		if f.Status == target && a.Status == target {
			continue
		}
		f.Status = target
		a.Status = target
		fixed = append(fixed, alertID)
	}
	sort.Slice(fixed, func(i, j int) bool { return idLess(fixed[i], fixed[j]) })
	return fixed, nil
}

func (s *Store) CreatePostRescueForm(_ context.Context, form *models.PostRescueForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[form.AlertID]
	if !ok {
		return fmt.Errorf("alert %s: %w", form.AlertID, models.ErrNotFound)
	}
	if _, exists := s.reports[form.AlertID]; exists {
		return fmt.Errorf("post-rescue form for %s: %w", form.AlertID, models.ErrDuplicate)
	}
	s.reportSeq++
	form.ID = models.FormatID(models.PostRescueFormIDPrefix, s.reportSeq)
	stored := *form
	s.reports[form.AlertID] = &stored
	a.Status = models.StatusCompleted
	if f, ok := s.forms[form.AlertID]; ok {
		f.Status = models.StatusCompleted
	}
	return nil
}

func (s *Store) GetPostRescueForm(_ context.Context, alertID string) (*models.PostRescueForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.reports[alertID]
	if !ok {
		return nil, fmt.Errorf("post-rescue form for %s: %w", alertID, models.ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (s *Store) SetArchivedAt(_ context.Context, alertID string, archivedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.reports[alertID]
	if !ok {
		return fmt.Errorf("post-rescue form for %s: %w", alertID, models.ErrNotFound)
	}
	if archivedAt == nil {
		p.ArchivedAt = nil
		return nil
	}
	at := *archivedAt
	p.ArchivedAt = &at
	return nil
}

func (s *Store) DeletePostRescueForm(_ context.Context, alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[alertID]; !ok {
		return fmt.Errorf("post-rescue form for %s: %w", alertID, models.ErrNotFound)
	}
	delete(s.reports, alertID)
	return nil
}

// idLess orders sequential IDs numerically: ALRT9999 sorts before ALRT10000.
func idLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
