package handlers

import (
	"log"
	"net/http"
	"time"

	"inventory-allocation-service/internal/api/dto"
	"inventory-allocation-service/internal/domain"
	"inventory-allocation-service/internal/ports"
	"inventory-allocation-service/internal/services"
)

// DatasetHandler exposes read-only dataset retrieval endpoints.
type DatasetHandler struct {
	Repo ports.DatasetRepository
}

func (h *DatasetHandler) Warehouses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouses, err := h.Repo.Warehouses(r.Context())
	if err != nil {
		log.Printf("list warehouses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWarehousesResponse{
		Warehouses: make([]dto.WarehouseResponse, 0, len(warehouses)),
	}
	for _, wh := range warehouses {
		res.Warehouses = append(res.Warehouses, dto.WarehouseResponse{
			WarehouseID:  wh.WarehouseID,
			Name:         wh.Name,
			Capacity:     wh.Capacity,
			CurrentStock: wh.CurrentStock,
			Location:     wh.Location,
			StorageCost:  nullableFloat(wh.StorageCost),
			Latitude:     nullableFloat(wh.Coord.Lat),
			Longitude:    nullableFloat(wh.Coord.Lon),
			Utilization:  wh.Utilization(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Orders lists dataset orders. Query parameters narrow the view:
// pending=true, urgent=true and history=true apply the queue filters,
// status=<value> matches the raw status column.
func (h *DatasetHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Repo.Orders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	q := r.URL.Query()
	now := time.Now().UTC()
	switch {
	case q.Get("pending") == "true":
		orders = services.PendingOrders(orders, now)
	case q.Get("urgent") == "true":
		orders = services.UrgentOrders(orders)
	case q.Get("history") == "true":
		orders = services.OrderHistory(orders, now)
	}
	if status := q.Get("status"); status != "" {
		orders = filterByStatus(orders, status)
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			OrderID:   o.OrderID,
			Date:      o.Date,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
			Deadline:  o.Deadline,
			Status:    o.Status,
			Latitude:  nullableFloat(o.Delivery.Lat),
			Longitude: nullableFloat(o.Delivery.Lon),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *DatasetHandler) Stock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stock, err := h.Repo.Stock(r.Context())
	if err != nil {
		log.Printf("list stock failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStockResponse{Stock: make([]dto.StockResponse, 0, len(stock))}
	for _, s := range stock {
		res.Stock = append(res.Stock, dto.StockResponse{
			WarehouseID: s.WarehouseID,
			ProductID:   s.ProductID,
			Quantity:    s.Quantity,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Overview aggregates warehouse capacity and the order queue into the
// dashboard snapshot.
func (h *DatasetHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouses, err := h.Repo.Warehouses(r.Context())
	if err != nil {
		log.Printf("overview failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	orders, err := h.Repo.Orders(r.Context())
	if err != nil {
		log.Printf("overview failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	ov := services.BuildOverview(warehouses, orders, time.Now().UTC())
	writeJSON(w, r, http.StatusOK, dto.OverviewResponse{
		TotalInventory: ov.TotalInventory,
		TotalCapacity:  ov.TotalCapacity,
		PendingOrders:  ov.PendingOrders,
		UrgentOrders:   ov.UrgentOrders,
		Utilization:    ov.Utilization,
	})
}

func filterByStatus(orders []domain.Order, status string) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
