package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-allocation-service/internal/adapters/repositories"
	"inventory-allocation-service/internal/api/dto"
	"inventory-allocation-service/internal/domain"
)

var errDataset = errors.New("dataset unavailable")

func datasetFixture() *repositories.MemoryDatasetRepository {
	// build test data
	repo := repositories.NewMemoryDatasetRepository()
	repo.WarehouseRows = []domain.Warehouse{
		{
			WarehouseID:  "W001",
			Name:         "Mumbai Central",
			Capacity:     10000,
			CurrentStock: 7500,
			Location:     "Mumbai",
			StorageCost:  100,
			Coord:        domain.Coordinates{Lat: 19.0760, Lon: 72.8777},
		},
		{
			WarehouseID:  "W002",
			Name:         "Delhi North",
			Capacity:     8000,
			CurrentStock: 2000,
			Location:     "Delhi",
			StorageCost:  math.NaN(),
			Coord:        domain.Coordinates{Lat: 28.7041, Lon: 77.1025},
		},
	}
	repo.OrderRows = []domain.Order{
		{
			OrderID:   "ORD001",
			Date:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			ProductID: "P001",
			Quantity:  500,
			Deadline:  time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:    domain.StatusPending,
			Delivery:  domain.Coordinates{Lat: 18.5204, Lon: 73.8567},
		},
		{
			OrderID:   "ORD002",
			Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			ProductID: "P002",
			Quantity:  200,
			Deadline:  time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:    domain.StatusUrgent,
			Delivery:  domain.Coordinates{Lat: 28.4595, Lon: 77.0266},
		},
		{
			OrderID:   "ORD003",
			Date:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			ProductID: "P001",
			Quantity:  50,
			Deadline:  time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:    "Delivered",
			Delivery:  domain.Coordinates{Lat: 19.0760, Lon: 72.8777},
		},
	}
	repo.StockRows = []domain.StockRecord{
		{WarehouseID: "W001", ProductID: "P001", Quantity: 1000},
		{WarehouseID: "W002", ProductID: "P002", Quantity: 300},
	}
	return repo
}

func TestWarehousesHandler(t *testing.T) {
	h := &DatasetHandler{Repo: datasetFixture()}

	req := httptest.NewRequest(http.MethodGet, "/warehouses", nil)
	rr := httptest.NewRecorder()
	h.Warehouses(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var res dto.ListWarehousesResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Warehouses) != 2 {
		t.Fatalf("len(Warehouses) = %d, want 2", len(res.Warehouses))
	}

	first := res.Warehouses[0]
	if first.WarehouseID != "W001" {
		t.Errorf("WarehouseID = %q, want W001", first.WarehouseID)
	}
	if first.StorageCost == nil || *first.StorageCost != 100 {
		t.Errorf("StorageCost = %v, want 100", first.StorageCost)
	}
	if first.Utilization != 0.75 {
		t.Errorf("Utilization = %v, want 0.75", first.Utilization)
	}

	// Malformed storage cost serializes as null, not NaN.
	if res.Warehouses[1].StorageCost != nil {
		t.Errorf("W002 StorageCost = %v, want null", *res.Warehouses[1].StorageCost)
	}
}

func TestWarehousesMethodNotAllowed(t *testing.T) {
	h := &DatasetHandler{Repo: datasetFixture()}

	req := httptest.NewRequest(http.MethodPost, "/warehouses", nil)
	rr := httptest.NewRecorder()
	h.Warehouses(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if allow := rr.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("Allow = %q, want GET", allow)
	}
}

func TestOrdersHandlerFilters(t *testing.T) {
	h := &DatasetHandler{Repo: datasetFixture()}

	cases := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{name: "all", target: "/orders", wantIDs: []string{"ORD001", "ORD002", "ORD003"}},
		{name: "status", target: "/orders?status=Pending", wantIDs: []string{"ORD001"}},
		{name: "urgent", target: "/orders?urgent=true", wantIDs: []string{"ORD002"}},
		{name: "pending", target: "/orders?pending=true", wantIDs: []string{"ORD001", "ORD002"}},
		{name: "history", target: "/orders?history=true", wantIDs: []string{"ORD003"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()
			h.Orders(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}

			var res dto.ListOrdersResponse
			if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(res.Orders) != len(tc.wantIDs) {
				t.Fatalf("len(Orders) = %d, want %d", len(res.Orders), len(tc.wantIDs))
			}
			for i, want := range tc.wantIDs {
				if res.Orders[i].OrderID != want {
					t.Errorf("Orders[%d] = %q, want %q", i, res.Orders[i].OrderID, want)
				}
			}
		})
	}
}

func TestStockHandler(t *testing.T) {
	h := &DatasetHandler{Repo: datasetFixture()}

	req := httptest.NewRequest(http.MethodGet, "/stock", nil)
	rr := httptest.NewRecorder()
	h.Stock(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var res dto.ListStockResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Stock) != 2 {
		t.Fatalf("len(Stock) = %d, want 2", len(res.Stock))
	}
	if res.Stock[0].WarehouseID != "W001" || res.Stock[0].Quantity != 1000 {
		t.Errorf("Stock[0] = %+v, want W001 with 1000 units", res.Stock[0])
	}
}

func TestOverviewHandler(t *testing.T) {
	h := &DatasetHandler{Repo: datasetFixture()}

	req := httptest.NewRequest(http.MethodGet, "/overview", nil)
	rr := httptest.NewRecorder()
	h.Overview(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var res dto.OverviewResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalInventory != 9500 {
		t.Errorf("TotalInventory = %d, want 9500", res.TotalInventory)
	}
	if res.TotalCapacity != 18000 {
		t.Errorf("TotalCapacity = %d, want 18000", res.TotalCapacity)
	}
	if res.PendingOrders != 2 {
		t.Errorf("PendingOrders = %d, want 2", res.PendingOrders)
	}
	if res.UrgentOrders != 1 {
		t.Errorf("UrgentOrders = %d, want 1", res.UrgentOrders)
	}
	if res.Utilization["W002"] != 0.25 {
		t.Errorf("Utilization[W002] = %v, want 0.25", res.Utilization["W002"])
	}
}

func TestDatasetHandlerRepoFailure(t *testing.T) {
	repo := datasetFixture()
	repo.Err = errDataset
	h := &DatasetHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/warehouses", nil)
	rr := httptest.NewRecorder()
	h.Warehouses(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
