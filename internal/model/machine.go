package model

// Criticality classifies how important a machine is to production.
type Criticality string

const (
	CriticalityLow    Criticality = "low"
	CriticalityMedium Criticality = "medium"
	CriticalityHigh   Criticality = "high"
)

// MachineStatus is the current health classification of a machine.
type MachineStatus string

const (
	StatusHealthy  MachineStatus = "healthy"
	StatusWarning  MachineStatus = "warning"
	StatusCritical MachineStatus = "critical"
)

// Prediction is the AI failure forecast attached to a machine. The values
// come from static fixtures; there is no model behind them.
type Prediction struct {
	FailureProbability  float64 `json:"failure_probability"`
	RemainingUsefulLife int     `json:"remaining_useful_life"`
	TimeToFailure       string  `json:"time_to_failure"`
	Status              string  `json:"status"`
	Recommendation      string  `json:"recommendation"`
}

// Machine is a monitored industrial asset.
type Machine struct {
	ID               int                `json:"id"`
	AssetID          string             `json:"asset_id"`
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	Location         string             `json:"location"`
	SerialNumber     string             `json:"serial_number"`
	Manufacturer     string             `json:"manufacturer"`
	Model            string             `json:"model"`
	InstallationDate string             `json:"installation_date"`
	Criticality      Criticality        `json:"criticality"`
	Status           MachineStatus      `json:"status"`
	Sensors          map[string]float64 `json:"sensors"`
	Prediction       Prediction         `json:"prediction"`
}

// Clone returns a deep copy so callers can never mutate stored sensor maps.
func (m Machine) Clone() Machine {
	out := m
	if m.Sensors != nil {
		out.Sensors = make(map[string]float64, len(m.Sensors))
		for k, v := range m.Sensors {
			out.Sensors[k] = v
		}
	}
	return out
}
