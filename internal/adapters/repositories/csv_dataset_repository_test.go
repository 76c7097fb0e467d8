package repositories

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory-allocation-service/internal/domain"
)

func TestCSVWarehouses(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "valid"))

	warehouses, err := repo.Warehouses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warehouses) != 2 {
		t.Fatalf("expected 2 warehouses, got %d", len(warehouses))
	}

	w := warehouses[0]
	if w.WarehouseID != "W001" || w.Name != "Mumbai Central" || w.Location != "Mumbai" {
		t.Errorf("warehouse = %+v", w)
	}
	if w.Capacity != 10000 || w.CurrentStock != 7500 {
		t.Errorf("capacity/current = %d/%d, want 10000/7500", w.Capacity, w.CurrentStock)
	}
	if w.StorageCost != 1200 {
		t.Errorf("storage cost = %v, want 1200", w.StorageCost)
	}
	if math.Abs(w.Coord.Lat-19.0760) > 1e-9 || math.Abs(w.Coord.Lon-72.8777) > 1e-9 {
		t.Errorf("coord = %+v", w.Coord)
	}
}

func TestCSVOrders(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "valid"))

	orders, err := repo.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	o := orders[0]
	if o.OrderID != "ORD001" || o.ProductID != "P001" || o.Quantity != 500 {
		t.Errorf("order = %+v", o)
	}
	if o.Status != domain.StatusPending {
		t.Errorf("status = %q, want %q", o.Status, domain.StatusPending)
	}
	if want := time.Date(2026, 3, 26, 0, 0, 0, 0, time.UTC); !o.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", o.Deadline, want)
	}

	// Second row uses the datetime layout.
	if want := time.Date(2026, 3, 24, 10, 30, 0, 0, time.UTC); !orders[1].Date.Equal(want) {
		t.Errorf("date = %v, want %v", orders[1].Date, want)
	}
	if orders[1].Status != domain.StatusUrgent {
		t.Errorf("status = %q, want %q", orders[1].Status, domain.StatusUrgent)
	}
}

func TestCSVStock(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "valid"))

	stock, err := repo.Stock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stock) != 3 {
		t.Fatalf("expected 3 stock rows, got %d", len(stock))
	}
	want := domain.StockRecord{WarehouseID: "W001", ProductID: "P001", Quantity: 450}
	if stock[0] != want {
		t.Errorf("stock[0] = %+v, want %+v", stock[0], want)
	}
}

func TestCSVLenientNumerics(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "malformed"))

	warehouses, err := repo.Warehouses(context.Background())
	if err != nil {
		t.Fatalf("malformed numerics must not fail the load: %v", err)
	}
	if len(warehouses) != 1 {
		t.Fatalf("expected 1 warehouse, got %d", len(warehouses))
	}

	w := warehouses[0]
	if !math.IsNaN(w.StorageCost) {
		t.Errorf("storage cost = %v, want NaN", w.StorageCost)
	}
	if !math.IsNaN(w.Coord.Lat) {
		t.Errorf("latitude = %v, want NaN", w.Coord.Lat)
	}
	if w.Coord.Valid() {
		t.Error("coordinates with NaN lat must not be valid")
	}
}

func TestCSVStrictQuantity(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "malformed"))

	_, err := repo.Orders(context.Background())
	if err == nil {
		t.Fatal("expected error for non-numeric quantity, got nil")
	}
	if !strings.Contains(err.Error(), "row 2") || !strings.Contains(err.Error(), "quantity") {
		t.Errorf("error %q should name the row and column", err)
	}
}

func TestCSVMissingColumn(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "missingcol"))

	_, err := repo.Warehouses(context.Background())
	if err == nil {
		t.Fatal("expected error for missing column, got nil")
	}
	if !strings.Contains(err.Error(), "storage_cost") {
		t.Errorf("error %q should name the missing column", err)
	}
}

func TestCSVMissingFile(t *testing.T) {
	repo := NewCSVDatasetRepository(filepath.Join("testdata", "missingcol"))

	if _, err := repo.Stock(context.Background()); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
