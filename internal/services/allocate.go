package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"inventory-allocation-service/internal/domain"
	"inventory-allocation-service/internal/platform/obs"
)

// Reason recorded for orders still waiting when the run exhausts its time
// budget.
const ReasonTimeout = "timeout"

type OptimizeRequest struct {
	Warehouses []domain.Warehouse
	Orders     []domain.Order
	Stock      []domain.StockRecord
	// TimeLimit caps the wall time of the pass; zero means unlimited.
	TimeLimit time.Duration
}

// Optimize builds an allocation plan in a single greedy pass.
//
// Orders are visited in a fixed priority order (status ascending, quantity
// descending, input order on ties) and each is served whole from the
// cheapest warehouse that still stocks the full quantity. Stock depletes as
// allocations commit, so earlier orders constrain later ones; the pass
// never revisits a decision. The algorithm favors determinism and a single
// pass over global optimality.
func Optimize(ctx context.Context, req OptimizeRequest) (plan *domain.Plan, err error) {
	defer obs.Time(ctx, "optimize")(&err)

	start := time.Now()

	byWarehouse := make(map[string]domain.Warehouse, len(req.Warehouses))
	for _, w := range req.Warehouses {
		byWarehouse[w.WarehouseID] = w
	}

	// Deplete a private copy; the caller keeps its stock untouched.
	ledger := domain.NewLedger(req.Stock)

	orders := make([]domain.Order, len(req.Orders))
	copy(orders, req.Orders)

	// Two-key priority sort. Stable, so equal orders keep their input order.
	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		if a.Status < b.Status {
			return -1
		}
		if a.Status > b.Status {
			return 1
		}
		if a.Quantity > b.Quantity {
			return -1
		}
		if a.Quantity < b.Quantity {
			return 1
		}
		return 0
	})

	plan = domain.NewPlan()

	for i, order := range orders {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("optimize: %w", ctxErr)
		}

		// Once the budget is spent, every remaining order is reported
		// unfulfilled rather than silently dropped.
		if req.TimeLimit > 0 && time.Since(start) > req.TimeLimit {
			for _, left := range orders[i:] {
				plan.Reject(left.OrderID, left.Quantity, ReasonTimeout)
			}
			break
		}

		if order.Quantity <= 0 {
			plan.Reject(order.OrderID, order.Quantity, fmt.Sprintf("invalid quantity %d", order.Quantity))
			continue
		}

		bestWarehouse := ""
		bestCost := math.Inf(1)
		bestDistance := math.Inf(1)

		for _, row := range ledger.Candidates(order.ProductID) {
			if row.Quantity < order.Quantity {
				continue
			}

			warehouse, ok := byWarehouse[row.WarehouseID]
			if !ok {
				return nil, fmt.Errorf("optimize: stock row references unknown warehouse %q", row.WarehouseID)
			}

			cost, distance := AllocationCost(warehouse, order)

			// Strict minimum: the first of equal candidates wins, and a NaN
			// or +Inf score never displaces a finite one.
			if cost < bestCost {
				bestWarehouse = row.WarehouseID
				bestCost = cost
				bestDistance = distance
			}
		}

		if bestWarehouse == "" {
			plan.Reject(order.OrderID, order.Quantity, fmt.Sprintf("Insufficient stock for product %s", order.ProductID))
			continue
		}

		if err := ledger.Deplete(bestWarehouse, order.ProductID, order.Quantity); err != nil {
			return nil, fmt.Errorf("optimize: %w", err)
		}

		plan.Add(bestWarehouse, domain.AllocationEntry{
			OrderID:  order.OrderID,
			Quantity: order.Quantity,
			Cost:     bestCost,
			Distance: bestDistance,
		})
	}

	plan.SolvingTime = time.Since(start).Seconds()
	plan.Status = domain.PlanCompleted
	plan.GeneratedAt = time.Now().UTC()

	return plan, nil
}
