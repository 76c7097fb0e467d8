package services

import (
	"time"

	"inventory-allocation-service/internal/domain"
)

// Snapshot of dataset health for the overview screen.
type Overview struct {
	TotalInventory int
	TotalCapacity  int
	PendingOrders  int
	UrgentOrders   int
	Utilization    map[string]float64
}

// BuildOverview aggregates site totals, per-warehouse utilization and the
// depth of the order queue.
func BuildOverview(warehouses []domain.Warehouse, orders []domain.Order, now time.Time) Overview {
	ov := Overview{Utilization: make(map[string]float64, len(warehouses))}
	for _, w := range warehouses {
		ov.TotalInventory += w.CurrentStock
		ov.TotalCapacity += w.Capacity
		ov.Utilization[w.WarehouseID] = w.Utilization()
	}
	ov.PendingOrders = len(PendingOrders(orders, now))
	ov.UrgentOrders = len(UrgentOrders(orders))
	return ov
}
