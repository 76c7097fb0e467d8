package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventory-allocation-service/internal/domain"
)

// Canonical dataset file names inside a data directory.
const (
	WarehousesFile = "warehouses.csv"
	OrdersFile     = "orders.csv"
	StockFile      = "inventory_levels.csv"
)

// CSV-backed implementation of the DatasetRepository port. Files follow the
// upload templates: a header row naming every required column, one record
// per row. Column order is free; extra columns are ignored.
type CSVDatasetRepository struct {
	Dir string
}

func NewCSVDatasetRepository(dir string) *CSVDatasetRepository {
	return &CSVDatasetRepository{Dir: dir}
}

func (r *CSVDatasetRepository) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	rows, idx, err := r.read(ctx, WarehousesFile,
		"warehouse_id", "name", "capacity", "current_stock", "location", "storage_cost", "latitude", "longitude")
	if err != nil {
		return nil, fmt.Errorf("load warehouses: %w", err)
	}

	out := make([]domain.Warehouse, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		id := strings.TrimSpace(row[idx["warehouse_id"]])
		if id == "" {
			return nil, fmt.Errorf("load warehouses: row %d: empty warehouse_id", rowNum)
		}

		capacity, err := parseIntField(row[idx["capacity"]], "capacity", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load warehouses: %w", err)
		}
		current, err := parseIntField(row[idx["current_stock"]], "current_stock", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load warehouses: %w", err)
		}

		out = append(out, domain.Warehouse{
			WarehouseID:  id,
			Name:         strings.TrimSpace(row[idx["name"]]),
			Capacity:     capacity,
			CurrentStock: current,
			Location:     strings.TrimSpace(row[idx["location"]]),
			StorageCost:  parseFloatLenient(row[idx["storage_cost"]]),
			Coord: domain.Coordinates{
				Lat: parseFloatLenient(row[idx["latitude"]]),
				Lon: parseFloatLenient(row[idx["longitude"]]),
			},
		})
	}

	return out, nil
}

func (r *CSVDatasetRepository) Orders(ctx context.Context) ([]domain.Order, error) {
	rows, idx, err := r.read(ctx, OrdersFile,
		"order_id", "date", "product_id", "quantity", "delivery_deadline", "status", "delivery_latitude", "delivery_longitude")
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	out := make([]domain.Order, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2

		id := strings.TrimSpace(row[idx["order_id"]])
		if id == "" {
			return nil, fmt.Errorf("load orders: row %d: empty order_id", rowNum)
		}
		productID := strings.TrimSpace(row[idx["product_id"]])
		if productID == "" {
			return nil, fmt.Errorf("load orders: row %d: empty product_id", rowNum)
		}

		quantity, err := parseIntField(row[idx["quantity"]], "quantity", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}
		date, err := parseDateField(row[idx["date"]], "date", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}
		deadline, err := parseDateField(row[idx["delivery_deadline"]], "delivery_deadline", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}

		out = append(out, domain.Order{
			OrderID:   id,
			Date:      date,
			ProductID: productID,
			Quantity:  quantity,
			Deadline:  deadline,
			Status:    strings.TrimSpace(row[idx["status"]]),
			Delivery: domain.Coordinates{
				Lat: parseFloatLenient(row[idx["delivery_latitude"]]),
				Lon: parseFloatLenient(row[idx["delivery_longitude"]]),
			},
		})
	}

	return out, nil
}

func (r *CSVDatasetRepository) Stock(ctx context.Context) ([]domain.StockRecord, error) {
	rows, idx, err := r.read(ctx, StockFile, "warehouse_id", "product_id", "current_stock")
	if err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}

	out := make([]domain.StockRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2

		warehouseID := strings.TrimSpace(row[idx["warehouse_id"]])
		if warehouseID == "" {
			return nil, fmt.Errorf("load stock: row %d: empty warehouse_id", rowNum)
		}
		productID := strings.TrimSpace(row[idx["product_id"]])
		if productID == "" {
			return nil, fmt.Errorf("load stock: row %d: empty product_id", rowNum)
		}

		quantity, err := parseIntField(row[idx["current_stock"]], "current_stock", rowNum)
		if err != nil {
			return nil, fmt.Errorf("load stock: %w", err)
		}

		out = append(out, domain.StockRecord{
			WarehouseID: warehouseID,
			ProductID:   productID,
			Quantity:    quantity,
		})
	}

	return out, nil
}

// read loads one CSV file and resolves the required column positions.
func (r *CSVDatasetRepository) read(ctx context.Context, name string, columns ...string) ([][]string, map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(r.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("parse %q: missing header row", path)
	}

	idx := make(map[string]int, len(columns))
	for i, col := range records[0] {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("parse %q: missing required column %q", path, col)
		}
	}

	return records[1:], idx, nil
}
