package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/rescue_coordination_system/internal/models"
)

func (s *Store) ListPending(_ context.Context) ([]*models.PendingReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PendingReport, 0)
	for alertID, f := range s.forms {
		if _, done := s.reports[alertID]; done {
			continue
		}
		a := s.alerts[alertID]
		t, focalName := s.terminalOf(a.TerminalID)
		loc := models.ResolveLocation(a.Location, t.Location)
		out = append(out, &models.PendingReport{
			AlertID:         a.AlertID,
			TerminalID:      a.TerminalID,
			TerminalName:    t.Name,
			FocalPersonName: focalName,
			AlertType:       a.AlertType,
			Status:          f.Status,
			Address:         loc.Address,
			Lat:             loc.Lat,
			Lng:             loc.Lng,
			RescueFormID:    f.FormID,
			CreatedAt:       a.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[j].AlertID, out[i].AlertID) })
	return out, nil
}

func (s *Store) ListCompleted(_ context.Context, scope models.ArchiveScope) ([]*models.CompletedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CompletedReport, 0)
	for alertID, p := range s.reports {
		if !scope.Includes(p.IsArchived()) {
			continue
		}
		a, f := s.alerts[alertID], s.forms[alertID]
		t, focalName := s.terminalOf(a.TerminalID)
		row := &models.CompletedReport{
			AlertID:               a.AlertID,
			TerminalID:            a.TerminalID,
			TerminalName:          t.Name,
			FocalPersonName:       focalName,
			AlertType:             a.AlertType,
			Address:               models.ResolveLocation(a.Location, t.Location).Address,
			PostRescueFormID:      p.ID,
			NoOfPersonnelDeployed: p.NoOfPersonnelDeployed,
			ResourcesUsed:         p.ResourcesUsed,
			ActionTaken:           p.ActionTaken,
			CompletedAt:           p.CompletedAt,
			ArchivedAt:            p.ArchivedAt,
		}
		if f != nil {
			row.RescueFormID = f.FormID
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CompletedAt.Equal(out[j].CompletedAt) {
			return out[i].CompletedAt.After(out[j].CompletedAt)
		}
		return idLess(out[j].AlertID, out[i].AlertID)
	})
	return out, nil
}

func (s *Store) ListDetailed(_ context.Context, filter models.ReportFilter) ([]*models.DetailedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.DetailedReport, 0)
	for alertID, p := range s.reports {
		if p.IsArchived() {
			continue
		}
		a := s.alerts[alertID]
		if filter.AlertID != "" && a.AlertID != filter.AlertID {
			continue
		}
		if filter.TerminalID != "" && a.TerminalID != filter.TerminalID {
			continue
		}
		if d := s.detailed(alertID); d != nil {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PostRescueForm.CompletedAt.After(out[j].PostRescueForm.CompletedAt)
	})
	return out, nil
}

func (s *Store) GetDetailed(_ context.Context, alertID string) (*models.DetailedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.detailed(alertID)
	if d == nil {
		return nil, fmt.Errorf("report for %s: %w", alertID, models.ErrNotFound)
	}
	return d, nil
}

// detailed requires the read lock.
func (s *Store) detailed(alertID string) *models.DetailedReport {
	p, ok := s.reports[alertID]
	if !ok {
		return nil
	}
	a, f := s.alerts[alertID], s.forms[alertID]
	if a == nil || f == nil {
		return nil
	}
	t, focalName := s.terminalOf(a.TerminalID)
	return &models.DetailedReport{
		Alert:           *a,
		Location:        models.ResolveLocation(a.Location, t.Location),
		TerminalName:    t.Name,
		FocalPersonName: focalName,
		RescueForm:      *f,
		PostRescueForm:  *p,
	}
}

// terminalOf requires the read lock.
func (s *Store) terminalOf(terminalID string) (models.Terminal, string) {
	t := s.terminals[terminalID]
	focal, ok := s.focal[t.FocalPersonID]
	if !ok {
		return t, ""
	}
	return t, focal.FullName()
}
