// Package store is the in-memory repository backing the mock service layer.
// A Store is constructed once per process (or per test) from a fixture seed;
// nothing is persisted and all state is lost when the process exits.
package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"predictive-maintenance-backend/internal/fixtures"
	"predictive-maintenance-backend/internal/model"
)

// Store holds mutable collections per entity, guarded by a single mutex so
// every exposed mutation is atomic. All reads return clones; callers never
// see internal slices or maps.
type Store struct {
	mu sync.RWMutex

	users            []model.User
	company          model.Company
	machines         []model.Machine
	workOrders       []model.WorkOrder
	alerts           []model.Alert
	notifications    []model.Notification
	assetTypes       []model.AssetType
	sensorThresholds []model.SensorThreshold
	accessRequests   []model.AccessRequest
	aiModel          model.AIModelInfo
	failureTrends    map[string][]model.FailureTrendPoint
}

// New builds a store from a fixture seed.
func New(seed fixtures.Seed) *Store {
	return &Store{
		users:            seed.Users,
		company:          seed.Company,
		machines:         seed.Machines,
		workOrders:       seed.WorkOrders,
		alerts:           seed.Alerts,
		notifications:    seed.Notifications,
		assetTypes:       seed.AssetTypes,
		sensorThresholds: seed.SensorThresholds,
		accessRequests:   seed.AccessRequests,
		aiModel:          seed.AIModel,
		failureTrends:    seed.FailureTrends,
	}
}

// --- Users ---

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) UserByID(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// InsertUser assigns the next id under the lock and appends the built record.
func (s *Store) InsertUser(build func(nextID int) model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 0
	for _, u := range s.users {
		if u.ID > next {
			next = u.ID
		}
	}
	u := build(next + 1)
	s.users = append(s.users, u)
	return u
}

func (s *Store) ReplaceUser(u model.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return true
		}
	}
	return false
}

func (s *Store) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept
	return found
}

// --- Company ---

func (s *Store) Company() model.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company
}

func (s *Store) SetCompany(c model.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = c
}

// --- Machines ---

func (s *Store) Machines() []model.Machine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Machine, len(s.machines))
	for i, m := range s.machines {
		out[i] = m.Clone()
	}
	return out
}

func (s *Store) MachineByID(id int) (model.Machine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.machines {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return model.Machine{}, false
}

// InsertMachine derives the next machine id and the per-prefix sequence
// number atomically, then appends the record built from them. The sequence is
// one past the highest numeric suffix among asset ids carrying the prefix, so
// it never collides with seeded ids whose suffixes outrun the machine count
// (e.g. PUMP-004 with a single pump seeded).
func (s *Store) InsertMachine(assetPrefix string, build func(nextID, typeSeq int) model.Machine) model.Machine {
	s.mu.Lock()
	defer s.mu.Unlock()
	nextID := 0
	maxSuffix := 0
	for _, m := range s.machines {
		if m.ID > nextID {
			nextID = m.ID
		}
		rest, ok := strings.CutPrefix(m.AssetID, assetPrefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > maxSuffix {
			maxSuffix = n
		}
	}
	m := build(nextID+1, maxSuffix+1)
	s.machines = append(s.machines, m)
	return m.Clone()
}

func (s *Store) ReplaceMachine(m model.Machine) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.machines {
		if s.machines[i].ID == m.ID {
			s.machines[i] = m.Clone()
			return true
		}
	}
	return false
}

func (s *Store) DeleteMachine(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.machines[:0]
	found := false
	for _, m := range s.machines {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	s.machines = kept
	return found
}

// --- Work orders ---

func (s *Store) WorkOrders() []model.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WorkOrder, len(s.workOrders))
	for i, w := range s.workOrders {
		out[i] = w.Clone()
	}
	return out
}

func (s *Store) WorkOrderByID(id int) (model.WorkOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workOrders {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return model.WorkOrder{}, false
}

// InsertWorkOrder derives the next id from the collection length under the
// lock (ids start at 101) and appends the record built from it.
func (s *Store) InsertWorkOrder(build func(nextID int) model.WorkOrder) model.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := build(len(s.workOrders) + 101)
	s.workOrders = append(s.workOrders, w)
	return w.Clone()
}

func (s *Store) ReplaceWorkOrder(w model.WorkOrder) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workOrders {
		if s.workOrders[i].ID == w.ID {
			s.workOrders[i] = w.Clone()
			return true
		}
	}
	return false
}

func (s *Store) DeleteWorkOrder(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.workOrders[:0]
	found := false
	for _, w := range s.workOrders {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	s.workOrders = kept
	return found
}

// --- Alerts ---

// Alerts returns all alerts sorted by creation time, newest first.
func (s *Store) Alerts() []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]model.Alert(nil), s.alerts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) AlertByID(id int) (model.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.alerts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Alert{}, false
}

func (s *Store) ReplaceAlert(a model.Alert) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == a.ID {
			s.alerts[i] = a
			return true
		}
	}
	return false
}

func (s *Store) DeleteAlert(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.alerts[:0]
	found := false
	for _, a := range s.alerts {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	s.alerts = kept
	return found
}

// --- Notifications ---

func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.notifications...)
}

func (s *Store) MarkNotificationRead(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// --- Asset types ---

func (s *Store) AssetTypes() []model.AssetType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AssetType(nil), s.assetTypes...)
}

func (s *Store) InsertAssetType(build func(nextID int) model.AssetType) model.AssetType {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 0
	for _, t := range s.assetTypes {
		if t.ID > next {
			next = t.ID
		}
	}
	t := build(next + 1)
	s.assetTypes = append(s.assetTypes, t)
	return t
}

func (s *Store) AssetTypeByID(id int) (model.AssetType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.assetTypes {
		if t.ID == id {
			return t, true
		}
	}
	return model.AssetType{}, false
}

func (s *Store) ReplaceAssetType(t model.AssetType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assetTypes {
		if s.assetTypes[i].ID == t.ID {
			s.assetTypes[i] = t
			return true
		}
	}
	return false
}

func (s *Store) DeleteAssetType(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.assetTypes[:0]
	found := false
	for _, t := range s.assetTypes {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.assetTypes = kept
	return found
}

// --- Sensor thresholds ---

func (s *Store) SensorThresholds() []model.SensorThreshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.SensorThreshold(nil), s.sensorThresholds...)
}

func (s *Store) InsertSensorThreshold(build func(nextID int) model.SensorThreshold) model.SensorThreshold {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 0
	for _, t := range s.sensorThresholds {
		if t.ID > next {
			next = t.ID
		}
	}
	t := build(next + 1)
	s.sensorThresholds = append(s.sensorThresholds, t)
	return t
}

func (s *Store) SensorThresholdByID(id int) (model.SensorThreshold, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.sensorThresholds {
		if t.ID == id {
			return t, true
		}
	}
	return model.SensorThreshold{}, false
}

func (s *Store) ReplaceSensorThreshold(t model.SensorThreshold) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sensorThresholds {
		if s.sensorThresholds[i].ID == t.ID {
			s.sensorThresholds[i] = t
			return true
		}
	}
	return false
}

func (s *Store) DeleteSensorThreshold(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sensorThresholds[:0]
	found := false
	for _, t := range s.sensorThresholds {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.sensorThresholds = kept
	return found
}

// --- Access requests ---

func (s *Store) AccessRequests() []model.AccessRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AccessRequest(nil), s.accessRequests...)
}

func (s *Store) AccessRequestByID(id int) (model.AccessRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.accessRequests {
		if r.ID == id {
			return r, true
		}
	}
	return model.AccessRequest{}, false
}

func (s *Store) InsertAccessRequest(build func(nextID int) model.AccessRequest) model.AccessRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 0
	for _, r := range s.accessRequests {
		if r.ID > next {
			next = r.ID
		}
	}
	r := build(next + 1)
	s.accessRequests = append(s.accessRequests, r)
	return r
}

func (s *Store) ReplaceAccessRequest(r model.AccessRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accessRequests {
		if s.accessRequests[i].ID == r.ID {
			s.accessRequests[i] = r
			return true
		}
	}
	return false
}

// --- AI model / trends ---

func (s *Store) AIModel() model.AIModelInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aiModel
}

func (s *Store) SetAIModel(m model.AIModelInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiModel = m
}

// FailureTrend returns the pre-baked series for the period, falling back to
// the monthly series for unknown periods.
func (s *Store) FailureTrend(period string) []model.FailureTrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series, ok := s.failureTrends[period]
	if !ok {
		series = s.failureTrends["monthly"]
	}
	return append([]model.FailureTrendPoint(nil), series...)
}
