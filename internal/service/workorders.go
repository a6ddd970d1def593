package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"predictive-maintenance-backend/internal/model"
)

// WorkOrderFilters narrows GetWorkOrders results; provided filters AND
// together.
type WorkOrderFilters struct {
	Status     string
	Priority   string
	MachineID  int
	AssignedTo int
}

func (f WorkOrderFilters) match(w model.WorkOrder) bool {
	if f.Status != "" && !strings.EqualFold(string(w.Status), f.Status) {
		return false
	}
	if f.Priority != "" && !strings.EqualFold(string(w.Priority), f.Priority) {
		return false
	}
	if f.MachineID != 0 && w.MachineID != f.MachineID {
		return false
	}
	if f.AssignedTo != 0 && (w.AssignedTo == nil || *w.AssignedTo != f.AssignedTo) {
		return false
	}
	return true
}

// GetWorkOrders lists work orders, optionally filtered.
func (s *Service) GetWorkOrders(ctx context.Context, filters WorkOrderFilters) ([]model.WorkOrder, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	all := s.store.WorkOrders()
	out := make([]model.WorkOrder, 0, len(all))
	for _, w := range all {
		if filters.match(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// GetWorkOrderByID returns one work order or a NotFound error.
func (s *Service) GetWorkOrderByID(ctx context.Context, id int) (model.WorkOrder, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.WorkOrder{}, err
	}
	w, ok := s.store.WorkOrderByID(id)
	if !ok {
		return model.WorkOrder{}, errWorkOrderNotFound
	}
	return w, nil
}

// CreateWorkOrderInput is the caller-supplied part of a new work order.
type CreateWorkOrderInput struct {
	MachineID      int            `json:"machine_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Priority       model.Priority `json:"priority"`
	AssignedTo     *int           `json:"assigned_to"`
	CreatedBy      int            `json:"created_by"`
	DueDate        string         `json:"due_date"`
	EstimatedHours float64        `json:"estimated_hours"`
	PartsNeeded    []string       `json:"parts_needed"`
}

// CreateWorkOrder assigns the next length-derived id (starting at 101),
// derives the WO number from it, and denormalizes the machine name and asset
// id from the referenced machine. Status starts open with an empty note list.
func (s *Service) CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (model.WorkOrder, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.WorkOrder{}, err
	}
	machine, ok := s.store.MachineByID(in.MachineID)
	if !ok {
		return model.WorkOrder{}, errMachineNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	parts := in.PartsNeeded
	if parts == nil {
		parts = []string{}
	}
	now := time.Now().UTC()
	w := s.store.InsertWorkOrder(func(nextID int) model.WorkOrder {
		return model.WorkOrder{
			ID:             nextID,
			WONumber:       fmt.Sprintf("WO-%d-%d", now.Year(), nextID),
			MachineID:      machine.ID,
			MachineName:    machine.Name,
			AssetID:        machine.AssetID,
			Title:          in.Title,
			Description:    in.Description,
			Priority:       priority,
			Status:         model.WorkOrderOpen,
			AssignedTo:     in.AssignedTo,
			CreatedBy:      in.CreatedBy,
			CreatedAt:      now,
			DueDate:        in.DueDate,
			EstimatedHours: in.EstimatedHours,
			PartsNeeded:    parts,
			Notes:          []model.WorkOrderNote{},
		}
	})
	return w, nil
}

// WorkOrderPatch is a shallow-merge update; nil fields are left unchanged.
type WorkOrderPatch struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	Priority       *model.Priority        `json:"priority"`
	Status         *model.WorkOrderStatus `json:"status"`
	AssignedTo     *int                   `json:"assigned_to"`
	DueDate        *string                `json:"due_date"`
	EstimatedHours *float64               `json:"estimated_hours"`
	ActualHours    *float64               `json:"actual_hours"`
	PartsNeeded    *[]string              `json:"parts_needed"`
}

// UpdateWorkOrder shallow-merges the patch into the work order with the
// given id.
func (s *Service) UpdateWorkOrder(ctx context.Context, id int, patch WorkOrderPatch) (model.WorkOrder, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.WorkOrder{}, err
	}
	w, ok := s.store.WorkOrderByID(id)
	if !ok {
		return model.WorkOrder{}, errWorkOrderNotFound
	}
	if patch.Title != nil {
		w.Title = *patch.Title
	}
	if patch.Description != nil {
		w.Description = *patch.Description
	}
	if patch.Priority != nil {
		w.Priority = *patch.Priority
	}
	if patch.Status != nil {
		w.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		w.AssignedTo = patch.AssignedTo
	}
	if patch.DueDate != nil {
		w.DueDate = *patch.DueDate
	}
	if patch.EstimatedHours != nil {
		w.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		w.ActualHours = *patch.ActualHours
	}
	if patch.PartsNeeded != nil {
		w.PartsNeeded = *patch.PartsNeeded
	}
	s.store.ReplaceWorkOrder(w)
	return w, nil
}

// DeleteWorkOrder removes a work order or returns NotFound.
func (s *Service) DeleteWorkOrder(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteWorkOrder(id) {
		return errWorkOrderNotFound
	}
	return nil
}

// AddWorkOrderNote appends a note with a generated id and a server-set
// timestamp.
func (s *Service) AddWorkOrderNote(ctx context.Context, id int, user, text string) (model.WorkOrder, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.WorkOrder{}, err
	}
	w, ok := s.store.WorkOrderByID(id)
	if !ok {
		return model.WorkOrder{}, errWorkOrderNotFound
	}
	w.Notes = append(w.Notes, model.WorkOrderNote{
		ID:        uuid.NewString(),
		User:      user,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	s.store.ReplaceWorkOrder(w)
	return w, nil
}

// CalendarEvent is one work order placed on the maintenance calendar by its
// due date.
type CalendarEvent struct {
	Date        string          `json:"date"`
	WorkOrderID int             `json:"work_order_id"`
	WONumber    string          `json:"wo_number"`
	Title       string          `json:"title"`
	AssetID     string          `json:"asset_id"`
	Priority    model.Priority  `json:"priority"`
	Status      model.WorkOrderStatus `json:"status"`
}

// GetMaintenanceCalendar buckets work orders due within the given month.
// Zero month/year default to the current month.
func (s *Service) GetMaintenanceCalendar(ctx context.Context, month time.Month, year int) ([]CalendarEvent, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	out := []CalendarEvent{}
	for _, w := range s.store.WorkOrders() {
		due, err := time.Parse("2006-01-02", w.DueDate)
		if err != nil {
			continue
		}
		if due.Month() != month || due.Year() != year {
			continue
		}
		out = append(out, CalendarEvent{
			Date:        w.DueDate,
			WorkOrderID: w.ID,
			WONumber:    w.WONumber,
			Title:       w.Title,
			AssetID:     w.AssetID,
			Priority:    w.Priority,
			Status:      w.Status,
		})
	}
	return out, nil
}
