package dto

import "time"

// Float fields that can arrive malformed from the datasets are pointers so
// they serialize as null instead of breaking JSON encoding.
type WarehouseResponse struct {
	WarehouseID  string   `json:"warehouse_id"`
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	CurrentStock int      `json:"current_stock"`
	Location     string   `json:"location"`
	StorageCost  *float64 `json:"storage_cost"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Utilization  float64  `json:"utilization"`
}

type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type OrderResponse struct {
	OrderID   string    `json:"order_id"`
	Date      time.Time `json:"date"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Deadline  time.Time `json:"deadline"`
	Status    string    `json:"status"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type StockResponse struct {
	WarehouseID string `json:"warehouse_id"`
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
}

type ListStockResponse struct {
	Stock []StockResponse `json:"stock"`
}

type OverviewResponse struct {
	TotalInventory int                `json:"total_inventory"`
	TotalCapacity  int                `json:"total_capacity"`
	PendingOrders  int                `json:"pending_orders"`
	UrgentOrders   int                `json:"urgent_orders"`
	Utilization    map[string]float64 `json:"warehouse_utilization"`
}
