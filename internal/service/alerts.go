package service

import (
	"context"
	"strings"
	"time"

	"predictive-maintenance-backend/internal/model"
)

// AlertFilters narrows GetAlerts results. Acknowledged is a tri-state:
// nil means "all".
type AlertFilters struct {
	Severity     string
	Acknowledged *bool
}

func (f AlertFilters) match(a model.Alert) bool {
	if f.Severity != "" && !strings.EqualFold(string(a.Severity), f.Severity) {
		return false
	}
	if f.Acknowledged != nil && a.Acknowledged != *f.Acknowledged {
		return false
	}
	return true
}

// GetAlerts lists alerts sorted by creation time descending, optionally
// filtered.
func (s *Service) GetAlerts(ctx context.Context, filters AlertFilters) ([]model.Alert, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	all := s.store.Alerts()
	out := make([]model.Alert, 0, len(all))
	for _, a := range all {
		if filters.match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// AcknowledgeAlert marks an alert acknowledged by the given user. Calling it
// again on an already-acknowledged alert overwrites the attribution.
func (s *Service) AcknowledgeAlert(ctx context.Context, id int, user string) (model.Alert, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.Alert{}, err
	}
	a, ok := s.store.AlertByID(id)
	if !ok {
		return model.Alert{}, errAlertNotFound
	}
	now := time.Now().UTC()
	a.Acknowledged = true
	a.AcknowledgedBy = &user
	a.AcknowledgedAt = &now
	s.store.ReplaceAlert(a)
	return a, nil
}

// DeleteAlert removes an alert or returns NotFound.
func (s *Service) DeleteAlert(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteAlert(id) {
		return errAlertNotFound
	}
	return nil
}

// GetNotifications lists the in-app notification tray.
func (s *Service) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	return s.store.Notifications(), nil
}

// MarkNotificationRead flags one notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return err
	}
	if !s.store.MarkNotificationRead(id) {
		return errNotificationNotFound
	}
	return nil
}

// MarkAllNotificationsRead flags every notification as read.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return err
	}
	s.store.MarkAllNotificationsRead()
	return nil
}
