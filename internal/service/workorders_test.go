package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictive-maintenance-backend/internal/model"
)

var woNumberPattern = regexp.MustCompile(`^WO-\d{4}-\d+$`)

func TestCreateWorkOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	w, err := svc.CreateWorkOrder(ctx, CreateWorkOrderInput{
		MachineID:   2,
		Title:       "Replace pump seals",
		Description: "Follow-up to the seal inspection.",
		Priority:    model.PriorityHigh,
		CreatedBy:   2,
		DueDate:     "2026-09-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 105, w.ID, "length-derived id starting at 101")
	assert.Regexp(t, woNumberPattern, w.WONumber)
	assert.Equal(t, model.WorkOrderOpen, w.Status)
	assert.Empty(t, w.Notes)
	assert.NotNil(t, w.Notes, "notes start as an empty list, not null")
	assert.Equal(t, "Hydraulic Pump Station", w.MachineName, "machine name denormalized")
	assert.Equal(t, "PUMP-004", w.AssetID)
}

func TestCreateWorkOrderUnknownMachine(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		MachineID: 999, Title: "Ghost task",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Machine not found")
}

func TestGetWorkOrdersFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		filters WorkOrderFilters
		wantIDs []int
	}{
		{name: "all", filters: WorkOrderFilters{}, wantIDs: []int{101, 102, 103, 104}},
		{name: "open only", filters: WorkOrderFilters{Status: "open"}, wantIDs: []int{101, 104}},
		{name: "by machine", filters: WorkOrderFilters{MachineID: 2}, wantIDs: []int{102}},
		{name: "by assignee", filters: WorkOrderFilters{AssignedTo: 3}, wantIDs: []int{101, 103}},
		{name: "priority and status", filters: WorkOrderFilters{Status: "open", Priority: "critical"}, wantIDs: []int{101}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := svc.GetWorkOrders(ctx, tc.filters)
			require.NoError(t, err)
			got := make([]int, len(orders))
			for i, w := range orders {
				got[i] = w.ID
			}
			assert.ElementsMatch(t, tc.wantIDs, got)
		})
	}
}

func TestGetWorkOrderByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetWorkOrderByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Work order not found")
}

func TestUpdateWorkOrderShallowMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	status := model.WorkOrderCompleted
	hours := 18.5
	w, err := svc.UpdateWorkOrder(ctx, 101, WorkOrderPatch{Status: &status, ActualHours: &hours})
	require.NoError(t, err)
	assert.Equal(t, model.WorkOrderCompleted, w.Status)
	assert.Equal(t, 18.5, w.ActualHours)
	assert.Equal(t, "Replace main bearing", w.Title, "untouched fields survive")
	assert.Len(t, w.Notes, 1)
}

func TestAddWorkOrderNote(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before := time.Now().UTC()
	w, err := svc.AddWorkOrderNote(ctx, 102, "Tom Beck", "Seals look worn, ordering replacements.")
	require.NoError(t, err)
	require.Len(t, w.Notes, 1)

	note := w.Notes[0]
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Tom Beck", note.User)
	assert.False(t, note.CreatedAt.Before(before), "created_at is server-set")

	// Note survives a subsequent read.
	again, err := svc.GetWorkOrderByID(ctx, 102)
	require.NoError(t, err)
	assert.Len(t, again.Notes, 1)
}

func TestAddWorkOrderNoteNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddWorkOrderNote(context.Background(), 999, "Nobody", "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMaintenanceCalendar(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// WO 101 is due 3 days out; ask for that month explicitly.
	due := time.Now().UTC().Add(3 * 24 * time.Hour)
	events, err := svc.GetMaintenanceCalendar(ctx, due.Month(), due.Year())
	require.NoError(t, err)

	var found bool
	for _, e := range events {
		if e.WorkOrderID == 101 {
			found = true
			assert.Equal(t, due.Format("2006-01-02"), e.Date)
			assert.Equal(t, "ENGINE-012", e.AssetID)
		}
	}
	assert.True(t, found, "work order 101 missing from its due month")

	// A month with nothing due is an empty list, not an error.
	empty, err := svc.GetMaintenanceCalendar(ctx, time.January, 1990)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
