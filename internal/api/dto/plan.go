package dto

import "time"

type RunPlanRequest struct {
	// TimeLimitSeconds caps the allocation pass. Omitted means the server
	// default; an explicit 0 lifts the limit entirely.
	TimeLimitSeconds *float64 `json:"time_limit_seconds"`
	IncludeAllOrders bool     `json:"include_all_orders"`
}

type AllocationResponse struct {
	OrderID    string  `json:"order_id"`
	Quantity   int     `json:"quantity"`
	Cost       float64 `json:"cost"`
	DistanceKm float64 `json:"distance_km"`
}

type WarehouseAllocationsResponse struct {
	WarehouseID string               `json:"warehouse_id"`
	Allocations []AllocationResponse `json:"allocations"`
}

type UnfulfilledResponse struct {
	OrderID  string `json:"order_id"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

type PlanResponse struct {
	PlanID             string                         `json:"plan_id"`
	Status             string                         `json:"status"`
	TotalCost          float64                        `json:"total_cost"`
	SolvingTimeSeconds float64                        `json:"solving_time_seconds"`
	FulfillmentRate    float64                        `json:"fulfillment_rate"`
	GeneratedAt        time.Time                      `json:"generated_at"`
	Warehouses         []WarehouseAllocationsResponse `json:"warehouses"`
	Unfulfilled        []UnfulfilledResponse          `json:"unfulfilled"`
}

type PlanSummaryResponse struct {
	PlanID             string    `json:"plan_id"`
	Status             string    `json:"status"`
	TotalCost          float64   `json:"total_cost"`
	SolvingTimeSeconds float64   `json:"solving_time_seconds"`
	FulfillmentRate    float64   `json:"fulfillment_rate"`
	GeneratedAt        time.Time `json:"generated_at"`
}

type ListPlansResponse struct {
	Plans []PlanSummaryResponse `json:"plans"`
}
