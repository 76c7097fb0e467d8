package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory-allocation-service/internal/domain"
)

// Postgres-backed implementation of the DatasetRepository port. Unlike the
// SQLite layout, date columns use native types and scan straight into
// time.Time through the pgx stdlib driver.
type PostgresDatasetRepository struct{ DB *sql.DB }

func NewPostgresDatasetRepository(db *sql.DB) *PostgresDatasetRepository {
	return &PostgresDatasetRepository{DB: db}
}

func (p *PostgresDatasetRepository) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	if p.DB == nil {
		return nil, errors.New("postgres dataset repository: DB is nil")
	}

	query := `
	SELECT warehouse_id, name, capacity, current_stock, location, storage_cost, latitude, longitude
	FROM warehouses
	ORDER BY warehouse_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
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

func (p *PostgresDatasetRepository) Orders(ctx context.Context) ([]domain.Order, error) {
	if p.DB == nil {
		return nil, errors.New("postgres dataset repository: DB is nil")
	}

	query := `
	SELECT order_id, date, product_id, quantity, delivery_deadline, status, delivery_latitude, delivery_longitude
	FROM orders
	ORDER BY order_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load orders: query orders table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&o.OrderID, &o.Date, &o.ProductID, &o.Quantity, &o.Deadline, &o.Status, &lat, &lon); err != nil {
			return nil, fmt.Errorf("load orders: scan row: %w", err)
		}
		o.Delivery = domain.Coordinates{Lat: nullableFloat(lat), Lon: nullableFloat(lon)}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load orders: row iteration: %w", err)
	}

	return out, nil
}

func (p *PostgresDatasetRepository) Stock(ctx context.Context) ([]domain.StockRecord, error) {
	if p.DB == nil {
		return nil, errors.New("postgres dataset repository: DB is nil")
	}

	query := `
	SELECT warehouse_id, product_id, current_stock
	FROM inventory_levels
	ORDER BY warehouse_id, product_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
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

// Create the Postgres dataset schema. Mirrors the SQLite layout with
// native column types.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS warehouses (
			warehouse_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			capacity INTEGER NOT NULL,
			current_stock INTEGER NOT NULL,
			location TEXT NOT NULL,
			storage_cost DOUBLE PRECISION,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		);`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			product_id TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			delivery_deadline TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			delivery_latitude DOUBLE PRECISION,
			delivery_longitude DOUBLE PRECISION
		);`,
		`CREATE TABLE IF NOT EXISTS inventory_levels (
			warehouse_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			current_stock INTEGER NOT NULL,
			PRIMARY KEY (warehouse_id, product_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_levels_product
			ON inventory_levels(product_id);`,
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// Populate Postgres from the CSV dataset files in dir.
func SeedPostgresFromCSV(ctx context.Context, db *sql.DB, dir string) error {
	if db == nil {
		return errors.New("seed postgres: DB is nil")
	}

	src := NewCSVDatasetRepository(dir)

	warehouses, err := src.Warehouses(ctx)
	if err != nil {
		return fmt.Errorf("seed postgres: %w", err)
	}
	orders, err := src.Orders(ctx)
	if err != nil {
		return fmt.Errorf("seed postgres: %w", err)
	}
	stock, err := src.Stock(ctx)
	if err != nil {
		return fmt.Errorf("seed postgres: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed postgres: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, w := range warehouses {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO warehouses (warehouse_id, name, capacity, current_stock, location, storage_cost, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (warehouse_id) DO UPDATE
		SET name = EXCLUDED.name,
			capacity = EXCLUDED.capacity,
			current_stock = EXCLUDED.current_stock,
			location = EXCLUDED.location,
			storage_cost = EXCLUDED.storage_cost,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude;
		`, w.WarehouseID, w.Name, w.Capacity, w.CurrentStock, w.Location,
			nanToNull(w.StorageCost), nanToNull(w.Coord.Lat), nanToNull(w.Coord.Lon))
		if err != nil {
			return fmt.Errorf("seed postgres: insert warehouse %s: %w", w.WarehouseID, err)
		}
	}

	for _, o := range orders {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, date, product_id, quantity, delivery_deadline, status, delivery_latitude, delivery_longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO UPDATE
		SET date = EXCLUDED.date,
			product_id = EXCLUDED.product_id,
			quantity = EXCLUDED.quantity,
			delivery_deadline = EXCLUDED.delivery_deadline,
			status = EXCLUDED.status,
			delivery_latitude = EXCLUDED.delivery_latitude,
			delivery_longitude = EXCLUDED.delivery_longitude;
		`, o.OrderID, o.Date, o.ProductID, o.Quantity, o.Deadline, o.Status,
			nanToNull(o.Delivery.Lat), nanToNull(o.Delivery.Lon))
		if err != nil {
			return fmt.Errorf("seed postgres: insert order %s: %w", o.OrderID, err)
		}
	}

	for _, rec := range stock {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_levels (warehouse_id, product_id, current_stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (warehouse_id, product_id) DO UPDATE
		SET current_stock = EXCLUDED.current_stock;
		`, rec.WarehouseID, rec.ProductID, rec.Quantity)
		if err != nil {
			return fmt.Errorf("seed postgres: insert stock %s/%s: %w", rec.WarehouseID, rec.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres: commit tx: %w", err)
	}

	return nil
}
