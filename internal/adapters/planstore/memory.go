package planstore

import (
	"context"
	"errors"
	"sync"

	"inventory-allocation-service/internal/ports"
)

// In-memory implementation of the PlanStore port. Runs are kept in
// insertion order; List walks newest first.
type Memory struct {
	mu      sync.RWMutex
	records map[string]ports.PlanRecord
	order   []string
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]ports.PlanRecord)}
}

func (m *Memory) Save(ctx context.Context, rec ports.PlanRecord) error {
	if rec.Plan == nil || rec.Plan.PlanID == "" {
		return errors.New("save plan: missing plan id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.Plan.PlanID]; !ok {
		m.order = append(m.order, rec.Plan.PlanID)
	}
	m.records[rec.Plan.PlanID] = rec
	return nil
}

func (m *Memory) Get(ctx context.Context, planID string) (ports.PlanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[planID]
	if !ok {
		return ports.PlanRecord{}, ports.ErrPlanNotFound
	}
	return rec, nil
}

func (m *Memory) List(ctx context.Context, limit int) ([]ports.PlanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ports.PlanRecord, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}
