package model

import "time"

// Priority ranks how urgently a work order needs attention.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// WorkOrderStatus tracks a work order through its lifecycle.
type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "open"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

// WorkOrderNote is a timestamped comment on a work order.
type WorkOrderNote struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkOrder is a maintenance task raised against a machine. MachineName and
// AssetID are denormalized from the machine at creation time.
type WorkOrder struct {
	ID             int             `json:"id"`
	WONumber       string          `json:"wo_number"`
	MachineID      int             `json:"machine_id"`
	MachineName    string          `json:"machine_name"`
	AssetID        string          `json:"asset_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Priority       Priority        `json:"priority"`
	Status         WorkOrderStatus `json:"status"`
	AssignedTo     *int            `json:"assigned_to"`
	CreatedBy      int             `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	DueDate        string          `json:"due_date"`
	EstimatedHours float64         `json:"estimated_hours"`
	ActualHours    float64         `json:"actual_hours"`
	PartsNeeded    []string        `json:"parts_needed"`
	Notes          []WorkOrderNote `json:"notes"`
}

// Clone returns a deep copy so stored notes and parts cannot be mutated by
// callers.
func (w WorkOrder) Clone() WorkOrder {
	out := w
	if w.AssignedTo != nil {
		v := *w.AssignedTo
		out.AssignedTo = &v
	}
	out.PartsNeeded = append([]string(nil), w.PartsNeeded...)
	out.Notes = append([]WorkOrderNote(nil), w.Notes...)
	return out
}
