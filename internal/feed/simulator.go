// Package feed emulates the realtime push channel of the dashboard without a
// real network socket. While connected, a single goroutine ticks on a fixed
// interval and emits synthesized sensor updates for a small set of tracked
// machines, plus the occasional synthetic alert.
package feed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names of the feed contract.
const (
	EventMachineUpdate = "machine_update"
	EventNewAlert      = "new_alert"
	EventConnected     = "connected"
	EventDisconnected  = "disconnected"
)

// MachineUpdate is the payload of a machine_update event.
type MachineUpdate struct {
	MachineID int                `json:"machine_id"`
	AssetID   string             `json:"asset_id"`
	Sensors   map[string]float64 `json:"sensors"`
	Timestamp time.Time          `json:"timestamp"`
}

// AlertEvent is the payload of a new_alert event.
type AlertEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	MachineID int       `json:"machine_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackedMachine is one machine the simulator synthesizes readings for.
// Baselines are the sensor centers; emitted values jitter within ±10%.
type TrackedMachine struct {
	ID        int
	AssetID   string
	Name      string
	Baselines map[string]float64
}

// Handler receives an event payload. Handlers run synchronously on the
// simulator goroutine; a panicking handler is recovered and does not stop
// the other handlers.
type Handler func(payload any)

// Simulator is the pseudo-socket. Connect and Disconnect are idempotent and
// at most one ticker goroutine exists at a time.
type Simulator struct {
	interval    time.Duration
	alertChance float64
	tracked     []TrackedMachine
	log         *zap.Logger

	mu        sync.Mutex
	listeners map[string][]Handler
	stop      chan struct{}
	done      chan struct{}
	rng       *rand.Rand
}

// NewSimulator builds a disconnected simulator. Interval defaults to 3s and
// alertChance to 0.1 when left zero.
func NewSimulator(interval time.Duration, alertChance float64, tracked []TrackedMachine, log *zap.Logger) *Simulator {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if alertChance <= 0 {
		alertChance = 0.1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		interval:    interval,
		alertChance: alertChance,
		tracked:     tracked,
		log:         log,
		listeners:   make(map[string][]Handler),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// On registers a handler for the named event.
func (s *Simulator) On(event string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], h)
}

// Connected reports whether the feed is currently running.
func (s *Simulator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// Connect starts the tick loop. Calling Connect on a connected simulator is
// a no-op.
func (s *Simulator) Connect() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	s.log.Info("feed connected", zap.Duration("interval", s.interval))
	s.emit(EventConnected, nil)
	go s.run(stop, done)
}

// Disconnect stops the tick loop and emits a terminal disconnected event.
// Calling Disconnect on a disconnected simulator is a no-op. No events are
// buffered or replayed across reconnects.
func (s *Simulator) Disconnect() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	close(stop)
	<-done
	s.log.Info("feed disconnected")
	s.emit(EventDisconnected, nil)
}

func (s *Simulator) run(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick emits one machine_update per tracked machine, and with a fixed low
// probability one new_alert for a random tracked machine.
func (s *Simulator) tick() {
	now := time.Now().UTC()
	for _, m := range s.tracked {
		s.emit(EventMachineUpdate, MachineUpdate{
			MachineID: m.ID,
			AssetID:   m.AssetID,
			Sensors:   s.jitter(m.Baselines),
			Timestamp: now,
		})
	}
	if len(s.tracked) > 0 && s.chance() {
		m := s.tracked[s.intn(len(s.tracked))]
		s.emit(EventNewAlert, AlertEvent{
			ID:        uuid.NewString(),
			Type:      "anomaly",
			Severity:  "warning",
			MachineID: m.ID,
			Message:   "Sensor readings deviate from baseline on " + m.Name,
			Timestamp: now,
		})
	}
}

func (s *Simulator) jitter(baselines map[string]float64) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(baselines))
	for name, base := range baselines {
		out[name] = base * (1 + (s.rng.Float64()*2-1)*0.1)
	}
	return out
}

func (s *Simulator) chance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.alertChance
}

func (s *Simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// emit invokes every handler registered for the event, isolating panics so
// one faulty handler cannot break the others or kill the tick loop.
func (s *Simulator) emit(event string, payload any) {
	s.mu.Lock()
	handlers := append([]Handler(nil), s.listeners[event]...)
	s.mu.Unlock()
	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Warn("feed handler panicked",
						zap.String("event", event),
						zap.Any("panic", r))
				}
			}()
			h(payload)
		}()
	}
}
