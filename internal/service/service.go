// Package service is the mock API layer. Every operation behaves like a call
// to a remote backend: it waits out an artificial latency, then reads or
// mutates the in-memory store and returns plain data or an error. Business
// rules live here and only here; the HTTP adapter is a thin translation on
// top of the same operations.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"predictive-maintenance-backend/internal/store"
)

// Latency is the artificial delay profile applied per operation weight.
// A zero-value profile disables the delays, which is what tests use.
type Latency struct {
	Light  time.Duration
	Medium time.Duration
	Heavy  time.Duration
}

// DefaultLatency mirrors the delays a real backend round trip would add.
var DefaultLatency = Latency{
	Light:  200 * time.Millisecond,
	Medium: 500 * time.Millisecond,
	Heavy:  time.Second,
}

// Service exposes the full mock API surface over a store.
type Service struct {
	store   *store.Store
	latency Latency
	log     *zap.Logger
}

// New creates a service over the given store.
func New(st *store.Store, latency Latency, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, latency: latency, log: log}
}

// delay waits out an artificial latency, returning early if the caller's
// context is cancelled first.
func (s *Service) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
