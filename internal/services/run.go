package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory-allocation-service/internal/domain"
	"inventory-allocation-service/internal/ports"
	"inventory-allocation-service/internal/platform/obs"
)

type RunAllocationRequest struct {
	// TimeLimit caps the optimization pass; zero means unlimited.
	TimeLimit time.Duration
	// IncludeAllOrders skips the pending filter and feeds every dataset
	// order to the engine.
	IncludeAllOrders bool
	// Now anchors the pending filter. Zero value means the current time.
	Now time.Time
}

type datasetResult struct {
	name string
	err  error
}

// RunAllocation loads the three datasets, runs the allocation pass over the
// pending order queue and persists the finished plan with its summary.
func RunAllocation(
	ctx context.Context,
	req RunAllocationRequest,
	repo ports.DatasetRepository,
	store ports.PlanStore,
) (rec ports.PlanRecord, err error) {
	defer obs.Time(ctx, "run_allocation")(&err)

	var (
		warehouses []domain.Warehouse
		orders     []domain.Order
		stock      []domain.StockRecord
	)

	// The three datasets are independent; load them concurrently.
	resultsCh := make(chan datasetResult, 3)
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		var e error
		warehouses, e = repo.Warehouses(ctx)
		resultsCh <- datasetResult{name: "warehouses", err: e}
	}()
	go func() {
		defer wg.Done()
		var e error
		orders, e = repo.Orders(ctx)
		resultsCh <- datasetResult{name: "orders", err: e}
	}()
	go func() {
		defer wg.Done()
		var e error
		stock, e = repo.Stock(ctx)
		resultsCh <- datasetResult{name: "stock", err: e}
	}()

	wg.Wait()
	close(resultsCh)

	for res := range resultsCh {
		if res.err != nil {
			return ports.PlanRecord{}, fmt.Errorf("run allocation: load %s: %w", res.name, res.err)
		}
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	if !req.IncludeAllOrders {
		orders = PendingOrders(orders, now)
	}

	plan, err := Optimize(ctx, OptimizeRequest{
		Warehouses: warehouses,
		Orders:     orders,
		Stock:      stock,
		TimeLimit:  req.TimeLimit,
	})
	if err != nil {
		return ports.PlanRecord{}, fmt.Errorf("run allocation: %w", err)
	}

	plan.PlanID = uuid.New().String()
	rec = ports.PlanRecord{Plan: plan, Summary: Summarize(plan)}

	if err := store.Save(ctx, rec); err != nil {
		return ports.PlanRecord{}, fmt.Errorf("run allocation: save plan: %w", err)
	}

	return rec, nil
}
