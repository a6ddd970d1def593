package feed

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTracked() []TrackedMachine {
	return []TrackedMachine{
		{ID: 1, AssetID: "CNC-001", Name: "CNC Milling Machine", Baselines: map[string]float64{"temperature": 65, "vibration": 2.5}},
		{ID: 2, AssetID: "PUMP-004", Name: "Hydraulic Pump", Baselines: map[string]float64{"pressure": 5.2}},
		{ID: 3, AssetID: "ENGINE-012", Name: "Diesel Engine", Baselines: map[string]float64{"rpm": 1800}},
	}
}

// collector records payloads for one event behind a mutex so test goroutines
// can read them while the simulator is ticking.
type collector struct {
	mu       sync.Mutex
	payloads []any
}

func (c *collector) handler(payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads = append(c.payloads, payload)
}

func (c *collector) snapshot() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.payloads...)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

func TestSimulatorEmitsUpdatesForAllTrackedMachines(t *testing.T) {
	sim := NewSimulator(10*time.Millisecond, 0.0001, testTracked(), nil)

	updates := &collector{}
	sim.On(EventMachineUpdate, updates.handler)

	sim.Connect()
	defer sim.Disconnect()

	require.Eventually(t, func() bool {
		return updates.count() >= 3
	}, time.Second, 5*time.Millisecond, "expected one update per tracked machine within a tick")

	seen := make(map[int]bool)
	for _, p := range updates.snapshot() {
		update, ok := p.(MachineUpdate)
		require.True(t, ok)
		seen[update.MachineID] = true
		assert.NotEmpty(t, update.Sensors)
	}
	assert.True(t, seen[1] && seen[2] && seen[3], "all tracked machines should appear")
}

func TestSimulatorJitterStaysWithinTenPercent(t *testing.T) {
	sim := NewSimulator(5*time.Millisecond, 0.0001, testTracked(), nil)

	updates := &collector{}
	sim.On(EventMachineUpdate, updates.handler)

	sim.Connect()
	require.Eventually(t, func() bool { return updates.count() >= 9 }, time.Second, 5*time.Millisecond)
	sim.Disconnect()

	baselines := map[int]map[string]float64{}
	for _, m := range testTracked() {
		baselines[m.ID] = m.Baselines
	}
	for _, p := range updates.snapshot() {
		update := p.(MachineUpdate)
		for name, value := range update.Sensors {
			base := baselines[update.MachineID][name]
			assert.InDelta(t, base, value, base*0.1+1e-9)
		}
	}
}

func TestSimulatorStopsEmittingAfterDisconnect(t *testing.T) {
	sim := NewSimulator(10*time.Millisecond, 0.0001, testTracked(), nil)

	updates := &collector{}
	sim.On(EventMachineUpdate, updates.handler)

	sim.Connect()
	require.Eventually(t, func() bool { return updates.count() > 0 }, time.Second, 5*time.Millisecond)
	sim.Disconnect()

	after := updates.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, updates.count(), "no events after disconnect")
	assert.False(t, sim.Connected())
}

func TestSimulatorLifecycleEvents(t *testing.T) {
	sim := NewSimulator(time.Hour, 0.0001, testTracked(), nil)

	connected := &collector{}
	disconnected := &collector{}
	sim.On(EventConnected, connected.handler)
	sim.On(EventDisconnected, disconnected.handler)

	sim.Connect()
	assert.True(t, sim.Connected())
	assert.Equal(t, 1, connected.count())

	// Idempotent: a second Connect must not re-emit or start another loop.
	sim.Connect()
	assert.Equal(t, 1, connected.count())

	sim.Disconnect()
	assert.False(t, sim.Connected())
	assert.Equal(t, 1, disconnected.count())

	sim.Disconnect()
	assert.Equal(t, 1, disconnected.count())
}

func TestSimulatorEmitsAlertsWhenChanceIsCertain(t *testing.T) {
	sim := NewSimulator(5*time.Millisecond, 1.0, testTracked(), nil)

	alerts := &collector{}
	sim.On(EventNewAlert, alerts.handler)

	sim.Connect()
	defer sim.Disconnect()

	require.Eventually(t, func() bool { return alerts.count() > 0 }, time.Second, 5*time.Millisecond)

	event, ok := alerts.snapshot()[0].(AlertEvent)
	require.True(t, ok)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "warning", event.Severity)
	assert.Contains(t, []int{1, 2, 3}, event.MachineID)
}

func TestSimulatorIsolatesPanickingHandlers(t *testing.T) {
	sim := NewSimulator(5*time.Millisecond, 0.0001, testTracked(), nil)

	sim.On(EventMachineUpdate, func(any) { panic("broken handler") })
	updates := &collector{}
	sim.On(EventMachineUpdate, updates.handler)

	sim.Connect()
	defer sim.Disconnect()

	require.Eventually(t, func() bool {
		return updates.count() >= 3
	}, time.Second, 5*time.Millisecond, "handlers after a panicking one still run")
}
