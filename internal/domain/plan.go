package domain

import "time"

// Plan lifecycle states. Summarize reports Unknown when a plan carries no
// status at all.
const (
	PlanInProgress = "In Progress"
	PlanCompleted  = "Completed"
	PlanUnknown    = "Unknown"
)

// A single committed allocation: one order served in full by one warehouse.
type AllocationEntry struct {
	OrderID  string
	Quantity int
	Cost     float64
	Distance float64
}

// An order the engine could not serve and the reason it was skipped.
type UnfulfilledEntry struct {
	OrderID  string
	Quantity int
	Reason   string
}

// Result of one allocation run.
// Allocations groups entries by warehouse in commit order; WarehouseOrder
// records the order warehouses first received an allocation so rendering
// stays deterministic across runs. Every input order lands in exactly one
// of Allocations or Unfulfilled.
type Plan struct {
	PlanID         string
	Allocations    map[string][]AllocationEntry
	WarehouseOrder []string
	Unfulfilled    []UnfulfilledEntry
	TotalCost      float64
	SolvingTime    float64
	Status         string
	GeneratedAt    time.Time
}

func NewPlan() *Plan {
	return &Plan{
		Allocations: make(map[string][]AllocationEntry),
		Unfulfilled: []UnfulfilledEntry{},
		Status:      PlanInProgress,
	}
}

// Commit an allocation under its warehouse, tracking first appearance.
func (p *Plan) Add(warehouseID string, e AllocationEntry) {
	if _, ok := p.Allocations[warehouseID]; !ok {
		p.WarehouseOrder = append(p.WarehouseOrder, warehouseID)
	}
	p.Allocations[warehouseID] = append(p.Allocations[warehouseID], e)
	p.TotalCost += e.Cost
}

// Record an order the run could not serve.
func (p *Plan) Reject(orderID string, quantity int, reason string) {
	p.Unfulfilled = append(p.Unfulfilled, UnfulfilledEntry{
		OrderID:  orderID,
		Quantity: quantity,
		Reason:   reason,
	})
}

// Number of committed allocations across all warehouses.
func (p *Plan) Fulfilled() int {
	n := 0
	for _, entries := range p.Allocations {
		n += len(entries)
	}
	return n
}

// Two-decimal roll-up of a Plan for reporting surfaces.
type Summary struct {
	TotalCost       float64
	SolvingTime     float64
	Status          string
	FulfillmentRate float64
	GeneratedAt     time.Time
}
