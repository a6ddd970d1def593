package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"predictive-maintenance-backend/internal/model"
)

// MachineFilters narrows GetMachines results. All provided filters are
// combined with AND; Search matches case-insensitively against name or
// asset id substrings.
type MachineFilters struct {
	Type     string
	Location string
	Status   string
	Search   string
}

func (f MachineFilters) match(m model.Machine) bool {
	if f.Type != "" && !strings.EqualFold(m.Type, f.Type) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(m.Location, f.Location) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(string(m.Status), f.Status) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.AssetID), q) {
			return false
		}
	}
	return true
}

// GetMachines lists machines, optionally filtered.
func (s *Service) GetMachines(ctx context.Context, filters MachineFilters) ([]model.Machine, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	all := s.store.Machines()
	out := make([]model.Machine, 0, len(all))
	for _, m := range all {
		if filters.match(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetMachineByID returns one machine or a NotFound error.
func (s *Service) GetMachineByID(ctx context.Context, id int) (model.Machine, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.Machine{}, err
	}
	m, ok := s.store.MachineByID(id)
	if !ok {
		return model.Machine{}, errMachineNotFound
	}
	return m, nil
}

// CreateMachineInput is the caller-supplied part of a new machine.
type CreateMachineInput struct {
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Location         string            `json:"location"`
	SerialNumber     string            `json:"serial_number"`
	Manufacturer     string            `json:"manufacturer"`
	Model            string            `json:"model"`
	InstallationDate string            `json:"installation_date"`
	Criticality      model.Criticality `json:"criticality"`
}

// CreateMachine derives the asset id from the type prefix plus the next free
// sequence number for that prefix, then fills in healthy defaults: status, a
// baseline sensor map, and a neutral prediction block.
func (s *Service) CreateMachine(ctx context.Context, in CreateMachineInput) (model.Machine, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.Machine{}, err
	}
	criticality := in.Criticality
	if criticality == "" {
		criticality = model.CriticalityMedium
	}
	prefix := assetPrefix(in.Type)
	m := s.store.InsertMachine(prefix, func(nextID, typeSeq int) model.Machine {
		return model.Machine{
			ID:               nextID,
			AssetID:          fmt.Sprintf("%s-%03d", prefix, typeSeq),
			Name:             in.Name,
			Type:             in.Type,
			Location:         in.Location,
			SerialNumber:     in.SerialNumber,
			Manufacturer:     in.Manufacturer,
			Model:            in.Model,
			InstallationDate: in.InstallationDate,
			Criticality:      criticality,
			Status:           model.StatusHealthy,
			Sensors: map[string]float64{
				"temperature": 60,
				"vibration":   2,
				"pressure":    5,
			},
			Prediction: model.Prediction{
				FailureProbability:  5,
				RemainingUsefulLife: 365,
				TimeToFailure:       "12+ months",
				Status:              "normal",
				Recommendation:      "No action required.",
			},
		}
	})
	return m, nil
}

// assetPrefix turns a machine type into the upper-cased asset id prefix,
// e.g. "Conveyor" -> "CONV".
func assetPrefix(machineType string) string {
	t := strings.ToUpper(strings.TrimSpace(machineType))
	if t == "" {
		return "ASSET"
	}
	if r := []rune(t); len(r) > 6 {
		t = string(r[:4])
	}
	return t
}

// MachinePatch is a shallow-merge update; nil fields are left unchanged.
type MachinePatch struct {
	Name             *string             `json:"name"`
	Type             *string             `json:"type"`
	Location         *string             `json:"location"`
	SerialNumber     *string             `json:"serial_number"`
	Manufacturer     *string             `json:"manufacturer"`
	Model            *string             `json:"model"`
	InstallationDate *string             `json:"installation_date"`
	Criticality      *model.Criticality  `json:"criticality"`
	Status           *model.MachineStatus `json:"status"`
	Sensors          *map[string]float64 `json:"sensors"`
	Prediction       *model.Prediction   `json:"prediction"`
}

// UpdateMachine shallow-merges the patch into the machine with the given id.
func (s *Service) UpdateMachine(ctx context.Context, id int, patch MachinePatch) (model.Machine, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.Machine{}, err
	}
	m, ok := s.store.MachineByID(id)
	if !ok {
		return model.Machine{}, errMachineNotFound
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Location != nil {
		m.Location = *patch.Location
	}
	if patch.SerialNumber != nil {
		m.SerialNumber = *patch.SerialNumber
	}
	if patch.Manufacturer != nil {
		m.Manufacturer = *patch.Manufacturer
	}
	if patch.Model != nil {
		m.Model = *patch.Model
	}
	if patch.InstallationDate != nil {
		m.InstallationDate = *patch.InstallationDate
	}
	if patch.Criticality != nil {
		m.Criticality = *patch.Criticality
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Sensors != nil {
		m.Sensors = *patch.Sensors
	}
	if patch.Prediction != nil {
		m.Prediction = *patch.Prediction
	}
	s.store.ReplaceMachine(m)
	return m, nil
}

// DeleteMachine removes a machine or returns NotFound.
func (s *Service) DeleteMachine(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteMachine(id) {
		return errMachineNotFound
	}
	return nil
}

// historyBaselines are the fixed centers the synthesized sensor history
// jitters around. The machine's live sensor values are deliberately not used.
var historyBaselines = map[string]float64{
	"temperature": 65,
	"vibration":   2.5,
	"pressure":    5.2,
	"rpm":         1800,
}

// GetMachineSensorHistory synthesizes hours+1 hourly readings of bounded
// random noise around the fixed baselines, newest last.
func (s *Service) GetMachineSensorHistory(ctx context.Context, id, hours int) ([]model.SensorReading, error) {
	if err := s.delay(ctx, s.latency.Heavy); err != nil {
		return nil, err
	}
	if _, ok := s.store.MachineByID(id); !ok {
		return nil, errMachineNotFound
	}
	if hours <= 0 {
		hours = 24
	}
	now := time.Now().UTC()
	out := make([]model.SensorReading, 0, hours+1)
	for i := hours; i >= 0; i-- {
		sensors := make(map[string]float64, len(historyBaselines))
		for name, base := range historyBaselines {
			jitter := (rand.Float64()*2 - 1) * 0.1 // ±10%
			sensors[name] = round1(base * (1 + jitter))
		}
		out = append(out, model.SensorReading{
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
			Sensors:   sensors,
		})
	}
	return out, nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
