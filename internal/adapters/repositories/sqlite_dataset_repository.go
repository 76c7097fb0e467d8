package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-allocation-service/internal/domain"
)

// SQLite-backed implementation of the DatasetRepository port. Dates are
// stored as TEXT in the dataset layouts, numeric columns may be NULL.
type SqliteDatasetRepository struct{ DB *sql.DB }

func NewSqliteDatasetRepository(db *sql.DB) *SqliteDatasetRepository {
	return &SqliteDatasetRepository{DB: db}
}

func (s *SqliteDatasetRepository) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	query := `
	SELECT
		warehouse_id,
		name,
		capacity,
		current_stock,
		location,
		storage_cost,
		latitude,
		longitude
	FROM warehouses
	ORDER BY warehouse_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load warehouses: query warehouses table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Warehouse, 0, 64)
	for rows.Next() {
		var w domain.Warehouse
		var storage, lat, lon sql.NullFloat64
		if err := rows.Scan(&w.WarehouseID, &w.Name, &w.Capacity, &w.CurrentStock, &w.Location, &storage, &lat, &lon); err != nil {
			return nil, fmt.Errorf("load warehouses: scan row: %w", err)
		}
		w.StorageCost = nullableFloat(storage)
		w.Coord = domain.Coordinates{Lat: nullableFloat(lat), Lon: nullableFloat(lon)}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load warehouses: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteDatasetRepository) Orders(ctx context.Context) ([]domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		date,
		product_id,
		quantity,
		delivery_deadline,
		status,
		delivery_latitude,
		delivery_longitude
	FROM orders
	ORDER BY order_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load orders: query orders table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		var date, deadline string
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&o.OrderID, &date, &o.ProductID, &o.Quantity, &deadline, &o.Status, &lat, &lon); err != nil {
			return nil, fmt.Errorf("load orders: scan row: %w", err)
		}

		if o.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("load orders: order %s: date: %w", o.OrderID, err)
		}
		if o.Deadline, err = parseDate(deadline); err != nil {
			return nil, fmt.Errorf("load orders: order %s: delivery_deadline: %w", o.OrderID, err)
		}
		o.Delivery = domain.Coordinates{Lat: nullableFloat(lat), Lon: nullableFloat(lon)}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load orders: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteDatasetRepository) Stock(ctx context.Context) ([]domain.StockRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dataset repository: DB is nil")
	}

	query := `
	SELECT
		warehouse_id,
		product_id,
		current_stock
	FROM inventory_levels
	ORDER BY warehouse_id, product_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load stock: query inventory_levels table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StockRecord, 0, 64)
	for rows.Next() {
		var rec domain.StockRecord
		if err := rows.Scan(&rec.WarehouseID, &rec.ProductID, &rec.Quantity); err != nil {
			return nil, fmt.Errorf("load stock: scan row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load stock: row iteration: %w", err)
	}

	return out, nil
}
