package ports

import (
	"context"
	"errors"

	"inventory-allocation-service/internal/domain"
)

// Returned by PlanStore.Get when no run exists under the requested id.
var ErrPlanNotFound = errors.New("plan not found")

// Snapshot persisted for each allocation run.
type PlanRecord struct {
	Plan    *domain.Plan
	Summary domain.Summary
}

// Port: a boundary for persisting finished allocation runs.
type PlanStore interface {
	// Persist one run under its plan id.
	Save(ctx context.Context, rec PlanRecord) error
	// Retrieve one run by plan id.
	Get(ctx context.Context, planID string) (PlanRecord, error)
	// Retrieve the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]PlanRecord, error)
}
