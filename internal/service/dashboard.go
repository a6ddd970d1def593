package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"predictive-maintenance-backend/internal/model"
)

// DashboardStats are the headline aggregates shown on the dashboard landing
// page, derived from the live collections on every call.
type DashboardStats struct {
	TotalMachines         int     `json:"total_machines"`
	HealthyMachines       int     `json:"healthy_machines"`
	WarningMachines       int     `json:"warning_machines"`
	CriticalMachines      int     `json:"critical_machines"`
	OpenWorkOrders        int     `json:"open_work_orders"`
	InProgressWorkOrders  int     `json:"in_progress_work_orders"`
	UnacknowledgedAlerts  int     `json:"unacknowledged_alerts"`
	AverageHealthScore    float64 `json:"average_health_score"`
}

// GetDashboardStats computes the dashboard aggregates. The health score is
// 100 minus the mean failure probability across machines.
func (s *Service) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return DashboardStats{}, err
	}
	var stats DashboardStats
	machines := s.store.Machines()
	stats.TotalMachines = len(machines)
	var probability float64
	for _, m := range machines {
		switch m.Status {
		case model.StatusHealthy:
			stats.HealthyMachines++
		case model.StatusWarning:
			stats.WarningMachines++
		case model.StatusCritical:
			stats.CriticalMachines++
		}
		probability += m.Prediction.FailureProbability
	}
	if len(machines) > 0 {
		stats.AverageHealthScore = round1(100 - probability/float64(len(machines)))
	}
	for _, w := range s.store.WorkOrders() {
		switch w.Status {
		case model.WorkOrderOpen:
			stats.OpenWorkOrders++
		case model.WorkOrderInProgress:
			stats.InProgressWorkOrders++
		}
	}
	for _, a := range s.store.Alerts() {
		if !a.Acknowledged {
			stats.UnacknowledgedAlerts++
		}
	}
	return stats, nil
}

// GetFailureTrend returns the pre-baked trend series for the period
// (daily, weekly, monthly, yearly). Unknown periods fall back to monthly.
func (s *Service) GetFailureTrend(ctx context.Context, period string) ([]model.FailureTrendPoint, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	return s.store.FailureTrend(period), nil
}

// ReportSummary aggregates maintenance activity for the reports page.
type ReportSummary struct {
	CompletedWorkOrders int            `json:"completed_work_orders"`
	OpenWorkOrders      int            `json:"open_work_orders"`
	TotalActualHours    float64        `json:"total_actual_hours"`
	AlertsBySeverity    map[string]int `json:"alerts_by_severity"`
	MachinesAtRisk      int            `json:"machines_at_risk"`
}

// GetReportSummary derives the report aggregates from the live collections.
func (s *Service) GetReportSummary(ctx context.Context) (ReportSummary, error) {
	if err := s.delay(ctx, s.latency.Heavy); err != nil {
		return ReportSummary{}, err
	}
	summary := ReportSummary{AlertsBySeverity: map[string]int{}}
	for _, w := range s.store.WorkOrders() {
		switch w.Status {
		case model.WorkOrderCompleted:
			summary.CompletedWorkOrders++
			summary.TotalActualHours += w.ActualHours
		case model.WorkOrderOpen:
			summary.OpenWorkOrders++
		}
	}
	for _, a := range s.store.Alerts() {
		summary.AlertsBySeverity[string(a.Severity)]++
	}
	for _, m := range s.store.Machines() {
		if m.Status != model.StatusHealthy {
			summary.MachinesAtRisk++
		}
	}
	return summary, nil
}

// ExportResult acknowledges an export request. No document is produced here;
// rendering happens in the presentation layer.
type ExportResult struct {
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	ID          int       `json:"id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ExportPDF returns a stub success acknowledgement for a report export.
func (s *Service) ExportPDF(ctx context.Context, exportType string, id int) (ExportResult, error) {
	if err := s.delay(ctx, s.latency.Heavy); err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Status:      "success",
		Type:        exportType,
		ID:          id,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// GetAIModelInfo returns static metadata about the prediction model.
func (s *Service) GetAIModelInfo(ctx context.Context) (model.AIModelInfo, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.AIModelInfo{}, err
	}
	return s.store.AIModel(), nil
}

// TrainResult acknowledges a training request. Nothing actually trains; the
// model metadata flips to "training" so the UI has something to show.
type TrainResult struct {
	Status    string    `json:"status"`
	JobID     string    `json:"job_id"`
	StartedAt time.Time `json:"started_at"`
}

// TrainAIModel pretends to kick off a training job.
func (s *Service) TrainAIModel(ctx context.Context) (TrainResult, error) {
	if err := s.delay(ctx, s.latency.Heavy); err != nil {
		return TrainResult{}, err
	}
	info := s.store.AIModel()
	info.Status = "training"
	s.store.SetAIModel(info)
	return TrainResult{
		Status:    "training_started",
		JobID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}, nil
}
