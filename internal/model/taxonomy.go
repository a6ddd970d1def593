package model

import "time"

// AssetType is an admin-configurable machine category. CRUD-only; nothing in
// the service derives behavior from it.
type AssetType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prefix      string `json:"prefix"`
	Active      bool   `json:"active"`
}

// SensorThreshold is an admin-configurable alerting boundary for one sensor.
type SensorThreshold struct {
	ID                int     `json:"id"`
	SensorName        string  `json:"sensor_name"`
	Unit              string  `json:"unit"`
	WarningThreshold  float64 `json:"warning_threshold"`
	CriticalThreshold float64 `json:"critical_threshold"`
	OverrideEnabled   bool    `json:"override_enabled"`
	Active            bool    `json:"active"`
}

// AccessRequestStatus tracks the review state of an access request.
type AccessRequestStatus string

const (
	AccessPending  AccessRequestStatus = "pending"
	AccessApproved AccessRequestStatus = "approved"
	AccessRejected AccessRequestStatus = "rejected"
)

// AccessRequest is a pending signup awaiting admin review.
type AccessRequest struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Reason     string              `json:"reason"`
	Status     AccessRequestStatus `json:"status"`
	ReviewedBy string              `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// AIModelInfo is static metadata about the (mock) prediction model.
type AIModelInfo struct {
	Name               string    `json:"name"`
	Version            string    `json:"version"`
	Accuracy           float64   `json:"accuracy"`
	Status             string    `json:"status"`
	LastTrained        time.Time `json:"last_trained"`
	TrainingDataPoints int       `json:"training_data_points"`
}

// FailureTrendPoint is one bucket of the pre-baked failure trend series.
type FailureTrendPoint struct {
	Label     string `json:"label"`
	Failures  int    `json:"failures"`
	Predicted int    `json:"predicted"`
}

// SensorReading is one synthesized point of sensor history.
type SensorReading struct {
	Timestamp time.Time          `json:"timestamp"`
	Sensors   map[string]float64 `json:"sensors"`
}
