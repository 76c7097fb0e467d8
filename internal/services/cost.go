package services

import "inventory-allocation-service/internal/domain"

// Cost model weights. Transport dominates: each kilometer of great-circle
// distance costs ten currency units, while the warehouse storage rate
// enters as a flat one-tenth penalty per allocation regardless of quantity.
const (
	TransportCostPerKm = 10.0
	StorageCostWeight  = 0.1
)

// AllocationCost scores serving one order from one warehouse and returns
// the score together with the distance that produced it. A warehouse with
// unusable coordinates scores +Inf and a NaN storage rate propagates NaN;
// neither survives the strict minimum the engine selects with.
func AllocationCost(w domain.Warehouse, o domain.Order) (cost, distance float64) {
	distance = Haversine(w.Coord, o.Delivery)
	cost = distance*TransportCostPerKm + w.StorageCost*StorageCostWeight
	return cost, distance
}
