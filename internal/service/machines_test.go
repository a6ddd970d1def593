package service

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictive-maintenance-backend/internal/model"
)

func TestGetMachinesFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	testCases := []struct {
		name       string
		filters    MachineFilters
		wantAssets []string
	}{
		{
			name:       "no filters returns everything",
			filters:    MachineFilters{},
			wantAssets: []string{"CNC-001", "PUMP-004", "ENGINE-012", "COMP-007", "CONV-003", "HVAC-002"},
		},
		{
			name:       "critical status returns exactly the engine",
			filters:    MachineFilters{Status: "critical"},
			wantAssets: []string{"ENGINE-012"},
		},
		{
			name:       "search matches asset id substring",
			filters:    MachineFilters{Search: "engine"},
			wantAssets: []string{"ENGINE-012"},
		},
		{
			name:       "search matches name substring",
			filters:    MachineFilters{Search: "pump"},
			wantAssets: []string{"PUMP-004"},
		},
		{
			name:       "filters AND together",
			filters:    MachineFilters{Status: "healthy", Location: "Building A - Floor 1"},
			wantAssets: []string{"CNC-001", "COMP-007"},
		},
		{
			name:       "no match yields empty list",
			filters:    MachineFilters{Type: "Submarine"},
			wantAssets: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			machines, err := svc.GetMachines(ctx, tc.filters)
			require.NoError(t, err)
			got := make([]string, len(machines))
			for i, m := range machines {
				got[i] = m.AssetID
			}
			assert.ElementsMatch(t, tc.wantAssets, got)
		})
	}
}

func TestGetMachinesSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lower, err := svc.GetMachines(ctx, MachineFilters{Search: "cnc"})
	require.NoError(t, err)
	upper, err := svc.GetMachines(ctx, MachineFilters{Search: "CNC"})
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

func TestGetMachineByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetMachineByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Machine not found")
}

func TestCreateMachine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMachine(ctx, CreateMachineInput{
		Name: "CNC Milling Machine 2", Type: "CNC", Location: "Building B",
	})
	require.NoError(t, err)
	assert.Equal(t, "CNC-002", m.AssetID, "second CNC gets sequence 002")
	assert.Equal(t, model.StatusHealthy, m.Status)
	assert.NotEmpty(t, m.Sensors)
	assert.Equal(t, "normal", m.Prediction.Status)

	// The new record shows up exactly once and asset ids stay unique.
	machines, err := svc.GetMachines(ctx, MachineFilters{})
	require.NoError(t, err)
	require.Len(t, machines, 7)
	seen := map[string]int{}
	for _, got := range machines {
		seen[got.AssetID]++
	}
	for assetID, count := range seen {
		assert.Equal(t, 1, count, "asset id %s duplicated", assetID)
	}
}

func TestCreateMachinePastSeededSuffix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// The seeded pump is PUMP-004; new pumps must continue past that suffix,
	// not recount from the number of pumps present.
	want := []string{"PUMP-005", "PUMP-006", "PUMP-007"}
	for _, expected := range want {
		m, err := svc.CreateMachine(ctx, CreateMachineInput{Name: "Coolant Pump", Type: "Pump"})
		require.NoError(t, err)
		assert.Equal(t, expected, m.AssetID)
	}

	machines, err := svc.GetMachines(ctx, MachineFilters{})
	require.NoError(t, err)
	seen := map[string]int{}
	for _, m := range machines {
		seen[m.AssetID]++
	}
	for assetID, count := range seen {
		assert.Equal(t, 1, count, "asset id %s duplicated", assetID)
	}
}

func TestAssetPrefixTruncatesByRunes(t *testing.T) {
	assert.Equal(t, "CONV", assetPrefix("Conveyor"))
	assert.Equal(t, "PUMP", assetPrefix("pump"))
	assert.Equal(t, "ASSET", assetPrefix("  "))

	// Multi-byte types must not be cut mid-rune.
	got := assetPrefix("Förderband")
	assert.Equal(t, "FÖRD", got)
	assert.True(t, utf8.ValidString(got))
}

func TestCreateMachineUnknownTypePrefix(t *testing.T) {
	svc := newTestService(t)

	m, err := svc.CreateMachine(context.Background(), CreateMachineInput{
		Name: "Press Brake", Type: "Hydraulic Press",
	})
	require.NoError(t, err)
	assert.Equal(t, "HYDR-001", m.AssetID)
	assert.Equal(t, model.CriticalityMedium, m.Criticality, "criticality defaults when omitted")
}

func TestUpdateMachineShallowMerge(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	status := model.StatusWarning
	m, err := svc.UpdateMachine(ctx, 1, MachinePatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusWarning, m.Status)
	assert.Equal(t, "CNC-001", m.AssetID, "asset id never changes after creation")
	assert.Equal(t, "CNC Milling Machine 1", m.Name)

	_, err = svc.UpdateMachine(ctx, 999, MachinePatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMachine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteMachine(ctx, 5))
	assert.ErrorIs(t, svc.DeleteMachine(ctx, 5), ErrNotFound)

	machines, err := svc.GetMachines(ctx, MachineFilters{})
	require.NoError(t, err)
	assert.Len(t, machines, 5)
}

func TestGetMachineSensorHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	history, err := svc.GetMachineSensorHistory(ctx, 1, 12)
	require.NoError(t, err)
	require.Len(t, history, 13, "hours+1 points")

	for i, reading := range history {
		if i > 0 {
			assert.True(t, reading.Timestamp.After(history[i-1].Timestamp), "points are oldest first")
		}
		for name, base := range historyBaselines {
			v, ok := reading.Sensors[name]
			require.True(t, ok)
			assert.InDelta(t, base, v, base*0.11, "jitter stays within ±10%% of the %s baseline", name)
		}
	}
}

func TestGetMachineSensorHistoryNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetMachineSensorHistory(context.Background(), 999, 24)
	assert.ErrorIs(t, err, ErrNotFound)
}
