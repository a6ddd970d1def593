// Package fixtures holds the hard-coded seed records the in-memory store is
// built from. Load returns a fresh copy every call so tests never share
// mutable state.
package fixtures

import (
	"time"

	"predictive-maintenance-backend/internal/model"
)

// Seed is the complete initial dataset for one store instance.
type Seed struct {
	Users            []model.User
	Company          model.Company
	Machines         []model.Machine
	WorkOrders       []model.WorkOrder
	Alerts           []model.Alert
	Notifications    []model.Notification
	AssetTypes       []model.AssetType
	SensorThresholds []model.SensorThreshold
	AccessRequests   []model.AccessRequest
	AIModel          model.AIModelInfo
	FailureTrends    map[string][]model.FailureTrendPoint
}

// Load builds the seed dataset. Timestamps are relative to the current time
// so that "recent" data stays recent regardless of when the process starts.
func Load() Seed {
	now := time.Now().UTC()
	return Seed{
		Users:            users(now),
		Company:          company(),
		Machines:         machines(),
		WorkOrders:       workOrders(now),
		Alerts:           alerts(now),
		Notifications:    notifications(now),
		AssetTypes:       assetTypes(),
		SensorThresholds: sensorThresholds(),
		AccessRequests:   accessRequests(now),
		AIModel: model.AIModelInfo{
			Name:               "RUL-Net",
			Version:            "2.3.1",
			Accuracy:           94.2,
			Status:             "ready",
			LastTrained:        now.Add(-7 * 24 * time.Hour),
			TrainingDataPoints: 1250000,
		},
		FailureTrends: failureTrends(),
	}
}

func users(now time.Time) []model.User {
	return []model.User{
		{
			ID: 1, Name: "Sarah Mitchell", Email: "sarah@northfield.io",
			Password: "admin123", Role: model.RoleAdmin,
			Avatar: "/avatars/sarah.png", FirstLogin: false, CompanyID: 1,
			CreatedAt: now.Add(-400 * 24 * time.Hour),
		},
		{
			ID: 2, Name: "James Okafor", Email: "james@northfield.io",
			Password: "engineer123", Role: model.RoleEngineer,
			Avatar: "/avatars/james.png", FirstLogin: false, CompanyID: 1,
			CreatedAt: now.Add(-300 * 24 * time.Hour),
		},
		{
			ID: 3, Name: "Maria Santos", Email: "maria@northfield.io",
			Password: "tech123", Role: model.RoleTechnician,
			Avatar: "/avatars/maria.png", FirstLogin: false, CompanyID: 1,
			CreatedAt: now.Add(-200 * 24 * time.Hour),
		},
		{
			ID: 4, Name: "Tom Beck", Email: "tom@northfield.io",
			Password: "tech456", Role: model.RoleTechnician,
			Avatar: "", FirstLogin: true, CompanyID: 1,
			CreatedAt: now.Add(-14 * 24 * time.Hour),
		},
	}
}

func company() model.Company {
	return model.Company{
		ID:             1,
		Name:           "Northfield Manufacturing",
		Timezone:       "America/Chicago",
		Language:       "en",
		ServiceType:    "predictive_maintenance",
		Industry:       "discrete_manufacturing",
		SetupCompleted: true,
	}
}

func machines() []model.Machine {
	return []model.Machine{
		{
			ID: 1, AssetID: "CNC-001", Name: "CNC Milling Machine 1",
			Type: "CNC", Location: "Building A - Floor 1",
			SerialNumber: "CM-88412-A", Manufacturer: "Haas", Model: "VF-4",
			InstallationDate: "2021-03-15",
			Criticality:      model.CriticalityHigh, Status: model.StatusHealthy,
			Sensors: map[string]float64{
				"temperature": 62.4, "vibration": 2.1, "pressure": 5.3, "rpm": 1840,
			},
			Prediction: model.Prediction{
				FailureProbability: 8, RemainingUsefulLife: 180,
				TimeToFailure: "6+ months", Status: "normal",
				Recommendation: "Continue routine maintenance schedule.",
			},
		},
		{
			ID: 2, AssetID: "PUMP-004", Name: "Hydraulic Pump Station",
			Type: "Pump", Location: "Building A - Floor 2",
			SerialNumber: "HP-10293-C", Manufacturer: "Bosch Rexroth", Model: "A10VSO",
			InstallationDate: "2019-11-02",
			Criticality:      model.CriticalityMedium, Status: model.StatusWarning,
			Sensors: map[string]float64{
				"temperature": 78.9, "vibration": 4.8, "pressure": 7.6, "flow_rate": 112,
			},
			Prediction: model.Prediction{
				FailureProbability: 42, RemainingUsefulLife: 45,
				TimeToFailure: "4-6 weeks", Status: "degrading",
				Recommendation: "Schedule seal inspection within two weeks.",
			},
		},
		{
			ID: 3, AssetID: "ENGINE-012", Name: "Diesel Generator Engine",
			Type: "Engine", Location: "Building B - Power Room",
			SerialNumber: "DG-55127-B", Manufacturer: "Cummins", Model: "QSK60",
			InstallationDate: "2017-06-20",
			Criticality:      model.CriticalityHigh, Status: model.StatusCritical,
			Sensors: map[string]float64{
				"temperature": 96.2, "vibration": 8.4, "oil_pressure": 2.1, "rpm": 1510,
			},
			Prediction: model.Prediction{
				FailureProbability: 87, RemainingUsefulLife: 7,
				TimeToFailure: "5-9 days", Status: "critical",
				Recommendation: "Take offline for bearing replacement immediately.",
			},
		},
		{
			ID: 4, AssetID: "COMP-007", Name: "Air Compressor Unit",
			Type: "Compressor", Location: "Building A - Floor 1",
			SerialNumber: "AC-77120-D", Manufacturer: "Atlas Copco", Model: "GA 90",
			InstallationDate: "2022-01-10",
			Criticality:      model.CriticalityMedium, Status: model.StatusHealthy,
			Sensors: map[string]float64{
				"temperature": 58.7, "vibration": 1.9, "pressure": 6.8,
			},
			Prediction: model.Prediction{
				FailureProbability: 5, RemainingUsefulLife: 320,
				TimeToFailure: "12+ months", Status: "normal",
				Recommendation: "No action required.",
			},
		},
		{
			ID: 5, AssetID: "CONV-003", Name: "Conveyor Belt Line 3",
			Type: "Conveyor", Location: "Building B - Assembly",
			SerialNumber: "CB-33981-E", Manufacturer: "Dorner", Model: "3200",
			InstallationDate: "2020-08-05",
			Criticality:      model.CriticalityLow, Status: model.StatusHealthy,
			Sensors: map[string]float64{
				"temperature": 45.1, "vibration": 1.2, "belt_speed": 1.6,
			},
			Prediction: model.Prediction{
				FailureProbability: 12, RemainingUsefulLife: 150,
				TimeToFailure: "5+ months", Status: "normal",
				Recommendation: "Inspect belt tension at next scheduled stop.",
			},
		},
		{
			ID: 6, AssetID: "HVAC-002", Name: "HVAC Chiller Unit",
			Type: "HVAC", Location: "Building A - Roof",
			SerialNumber: "CH-61004-F", Manufacturer: "Trane", Model: "CVHE",
			InstallationDate: "2018-04-25",
			Criticality:      model.CriticalityLow, Status: model.StatusWarning,
			Sensors: map[string]float64{
				"temperature": 71.3, "vibration": 3.9, "refrigerant_pressure": 9.2,
			},
			Prediction: model.Prediction{
				FailureProbability: 35, RemainingUsefulLife: 60,
				TimeToFailure: "2-3 months", Status: "degrading",
				Recommendation: "Check refrigerant charge and condenser fouling.",
			},
		},
	}
}

func workOrders(now time.Time) []model.WorkOrder {
	assignee3 := 3
	assignee4 := 4
	year := now.Format("2006")
	return []model.WorkOrder{
		{
			ID: 101, WONumber: "WO-" + year + "-101",
			MachineID: 3, MachineName: "Diesel Generator Engine", AssetID: "ENGINE-012",
			Title:       "Replace main bearing",
			Description: "Vibration signature indicates advanced bearing wear on the drive end.",
			Priority:    model.PriorityCritical, Status: model.WorkOrderOpen,
			AssignedTo: &assignee3, CreatedBy: 2,
			CreatedAt: now.Add(-36 * time.Hour),
			DueDate:   now.Add(3 * 24 * time.Hour).Format("2006-01-02"),
			EstimatedHours: 16,
			PartsNeeded:    []string{"Main bearing set", "Gasket kit", "Oil filter"},
			Notes: []model.WorkOrderNote{
				{
					ID: "a1f2c9d0-6b3e-4f7a-9c21-0d8e5b4a7f10",
					User: "James Okafor", Text: "Parts ordered, ETA tomorrow.",
					CreatedAt: now.Add(-20 * time.Hour),
				},
			},
		},
		{
			ID: 102, WONumber: "WO-" + year + "-102",
			MachineID: 2, MachineName: "Hydraulic Pump Station", AssetID: "PUMP-004",
			Title:       "Inspect pump seals",
			Description: "Temperature trending up; suspect seal degradation.",
			Priority:    model.PriorityHigh, Status: model.WorkOrderInProgress,
			AssignedTo: &assignee4, CreatedBy: 2,
			CreatedAt: now.Add(-3 * 24 * time.Hour),
			DueDate:   now.Add(7 * 24 * time.Hour).Format("2006-01-02"),
			EstimatedHours: 4, ActualHours: 1.5,
			PartsNeeded: []string{"Seal kit"},
			Notes:       []model.WorkOrderNote{},
		},
		{
			ID: 103, WONumber: "WO-" + year + "-103",
			MachineID: 1, MachineName: "CNC Milling Machine 1", AssetID: "CNC-001",
			Title:       "Quarterly lubrication service",
			Description: "Routine lubrication and way-cover inspection.",
			Priority:    model.PriorityLow, Status: model.WorkOrderCompleted,
			AssignedTo: &assignee3, CreatedBy: 1,
			CreatedAt: now.Add(-12 * 24 * time.Hour),
			DueDate:   now.Add(-5 * 24 * time.Hour).Format("2006-01-02"),
			EstimatedHours: 2, ActualHours: 2.5,
			PartsNeeded: []string{},
			Notes: []model.WorkOrderNote{
				{
					ID: "b7e81c44-2d9f-4a6b-8e05-93c1f0a2d6e9",
					User: "Maria Santos", Text: "Completed, no anomalies found.",
					CreatedAt: now.Add(-5 * 24 * time.Hour),
				},
			},
		},
		{
			ID: 104, WONumber: "WO-" + year + "-104",
			MachineID: 6, MachineName: "HVAC Chiller Unit", AssetID: "HVAC-002",
			Title:       "Check refrigerant charge",
			Description: "Refrigerant pressure above nominal band.",
			Priority:    model.PriorityMedium, Status: model.WorkOrderOpen,
			CreatedBy: 2,
			CreatedAt: now.Add(-8 * time.Hour),
			DueDate:   now.Add(10 * 24 * time.Hour).Format("2006-01-02"),
			EstimatedHours: 3,
			PartsNeeded:    []string{},
			Notes:          []model.WorkOrderNote{},
		},
	}
}

func alerts(now time.Time) []model.Alert {
	ackBy := "Sarah Mitchell"
	ackAt3 := now.Add(-25 * time.Hour)
	ackAt4 := now.Add(-45 * time.Hour)
	return []model.Alert{
		{
			ID: 1, Type: model.AlertPrediction, Severity: model.SeverityCritical,
			MachineID: 3, MachineName: "Diesel Generator Engine", AssetID: "ENGINE-012",
			Title:     "Imminent bearing failure predicted",
			Message:   "Failure probability reached 87%. Remaining useful life under 10 days.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: 2, Type: model.AlertThreshold, Severity: model.SeverityWarning,
			MachineID: 2, MachineName: "Hydraulic Pump Station", AssetID: "PUMP-004",
			Title:     "Temperature above warning threshold",
			Message:   "Pump temperature 78.9°C exceeds the 75°C warning threshold.",
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID: 3, Type: model.AlertAnomaly, Severity: model.SeverityWarning,
			MachineID: 6, MachineName: "HVAC Chiller Unit", AssetID: "HVAC-002",
			Title:     "Vibration anomaly detected",
			Message:   "Vibration pattern deviates from the trained baseline.",
			CreatedAt: now.Add(-26 * time.Hour),
			Acknowledged: true, AcknowledgedBy: &ackBy, AcknowledgedAt: &ackAt3,
		},
		{
			ID: 4, Type: model.AlertMaintenanceDue, Severity: model.SeverityInfo,
			MachineID: 1, MachineName: "CNC Milling Machine 1", AssetID: "CNC-001",
			Title:     "Scheduled maintenance due",
			Message:   "Quarterly lubrication service is due this week.",
			CreatedAt: now.Add(-48 * time.Hour),
			Acknowledged: true, AcknowledgedBy: &ackBy, AcknowledgedAt: &ackAt4,
		},
	}
}

func notifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID: 1, Type: "alert", Title: "Critical alert on ENGINE-012",
			Message:   "Imminent bearing failure predicted.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: 2, Type: "work_order", Title: "Work order assigned",
			Message:   "WO for pump seal inspection assigned to Tom Beck.",
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: 3, Type: "system", Title: "Model retraining complete",
			Message: "Prediction model v2.3.1 deployed.", Read: true,
			CreatedAt: now.Add(-7 * 24 * time.Hour),
		},
		{
			ID: 4, Type: "work_order", Title: "Work order completed",
			Message: "Quarterly lubrication on CNC-001 closed.", Read: true,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
	}
}

func assetTypes() []model.AssetType {
	return []model.AssetType{
		{ID: 1, Name: "CNC", Description: "CNC machining centers", Prefix: "CNC", Active: true},
		{ID: 2, Name: "Pump", Description: "Hydraulic and water pumps", Prefix: "PUMP", Active: true},
		{ID: 3, Name: "Engine", Description: "Combustion engines and generators", Prefix: "ENGINE", Active: true},
		{ID: 4, Name: "Compressor", Description: "Air and gas compressors", Prefix: "COMP", Active: true},
		{ID: 5, Name: "Conveyor", Description: "Belt and roller conveyors", Prefix: "CONV", Active: true},
		{ID: 6, Name: "HVAC", Description: "Heating and cooling units", Prefix: "HVAC", Active: true},
	}
}

func sensorThresholds() []model.SensorThreshold {
	return []model.SensorThreshold{
		{ID: 1, SensorName: "temperature", Unit: "°C", WarningThreshold: 75, CriticalThreshold: 90, Active: true},
		{ID: 2, SensorName: "vibration", Unit: "mm/s", WarningThreshold: 4.5, CriticalThreshold: 7.1, Active: true},
		{ID: 3, SensorName: "pressure", Unit: "bar", WarningThreshold: 8, CriticalThreshold: 10, Active: true},
		{ID: 4, SensorName: "rpm", Unit: "rpm", WarningThreshold: 2200, CriticalThreshold: 2500, OverrideEnabled: true, Active: true},
	}
}

func accessRequests(now time.Time) []model.AccessRequest {
	return []model.AccessRequest{
		{
			ID: 1, Name: "Priya Raman", Email: "priya@northfield.io",
			Reason: "New maintenance technician on night shift.", Status: model.AccessPending,
			CreatedAt: now.Add(-30 * time.Hour),
		},
		{
			ID: 2, Name: "Erik Lund", Email: "erik@northfield.io",
			Reason: "Reliability engineer, needs dashboard access.", Status: model.AccessPending,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}
}

func failureTrends() map[string][]model.FailureTrendPoint {
	return map[string][]model.FailureTrendPoint{
		"daily": {
			{Label: "Mon", Failures: 0, Predicted: 1},
			{Label: "Tue", Failures: 1, Predicted: 1},
			{Label: "Wed", Failures: 0, Predicted: 0},
			{Label: "Thu", Failures: 2, Predicted: 2},
			{Label: "Fri", Failures: 1, Predicted: 1},
			{Label: "Sat", Failures: 0, Predicted: 1},
			{Label: "Sun", Failures: 0, Predicted: 0},
		},
		"weekly": {
			{Label: "Week 1", Failures: 3, Predicted: 4},
			{Label: "Week 2", Failures: 2, Predicted: 2},
			{Label: "Week 3", Failures: 4, Predicted: 3},
			{Label: "Week 4", Failures: 1, Predicted: 2},
		},
		"monthly": {
			{Label: "Jan", Failures: 8, Predicted: 9},
			{Label: "Feb", Failures: 6, Predicted: 7},
			{Label: "Mar", Failures: 9, Predicted: 8},
			{Label: "Apr", Failures: 5, Predicted: 6},
			{Label: "May", Failures: 7, Predicted: 7},
			{Label: "Jun", Failures: 10, Predicted: 9},
		},
		"yearly": {
			{Label: "2021", Failures: 64, Predicted: 70},
			{Label: "2022", Failures: 58, Predicted: 61},
			{Label: "2023", Failures: 49, Predicted: 52},
			{Label: "2024", Failures: 41, Predicted: 44},
			{Label: "2025", Failures: 35, Predicted: 38},
		},
	}
}
