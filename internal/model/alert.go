package model

import "time"

// AlertType identifies what raised an alert.
type AlertType string

const (
	AlertPrediction     AlertType = "prediction"
	AlertThreshold      AlertType = "threshold"
	AlertAnomaly        AlertType = "anomaly"
	AlertMaintenanceDue AlertType = "maintenance_due"
)

// Severity ranks alerts for triage.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a condition raised against a machine. Acknowledged implies both
// AcknowledgedBy and AcknowledgedAt are set; unacknowledged implies both nil.
type Alert struct {
	ID             int        `json:"id"`
	Type           AlertType  `json:"type"`
	Severity       Severity   `json:"severity"`
	MachineID      int        `json:"machine_id"`
	MachineName    string     `json:"machine_name"`
	AssetID        string     `json:"asset_id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy *string    `json:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
}

// Notification is an in-app message shown in the notification tray.
type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
