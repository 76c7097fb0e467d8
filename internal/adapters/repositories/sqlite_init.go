package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the dataset schema. Safe to run repeatedly.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		warehouse_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		current_stock INTEGER NOT NULL,
		location TEXT NOT NULL,
		storage_cost REAL,
		latitude REAL,
		longitude REAL
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		delivery_deadline TEXT NOT NULL,
		status TEXT NOT NULL,
		delivery_latitude REAL,
		delivery_longitude REAL
	);
	`

	createStockQuery := `
	CREATE TABLE IF NOT EXISTS inventory_levels (
		warehouse_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		current_stock INTEGER NOT NULL,
		PRIMARY KEY (warehouse_id, product_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_inventory_levels_product
	ON inventory_levels(product_id);
	`

	statements := []string{
		createWarehousesQuery,
		createOrdersQuery,
		createStockQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database from the CSV dataset files in dir. Existing rows
// with matching keys are replaced, so reseeding is idempotent.
func SeedFromCSV(ctx context.Context, db *sql.DB, dir string) error {
	if db == nil {
		return errors.New("seed datasets: DB is nil")
	}

	src := NewCSVDatasetRepository(dir)

	warehouses, err := src.Warehouses(ctx)
	if err != nil {
		return fmt.Errorf("seed datasets: %w", err)
	}
	orders, err := src.Orders(ctx)
	if err != nil {
		return fmt.Errorf("seed datasets: %w", err)
	}
	stock, err := src.Stock(ctx)
	if err != nil {
		return fmt.Errorf("seed datasets: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed datasets: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	warehouseStmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO warehouses (
		warehouse_id, name, capacity, current_stock, location, storage_cost, latitude, longitude
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed datasets: prepare warehouse insert: %w", err)
	}
	defer warehouseStmt.Close()

	for _, w := range warehouses {
		_, err := warehouseStmt.ExecContext(ctx,
			w.WarehouseID, w.Name, w.Capacity, w.CurrentStock, w.Location,
			nanToNull(w.StorageCost), nanToNull(w.Coord.Lat), nanToNull(w.Coord.Lon))
		if err != nil {
			return fmt.Errorf("seed datasets: insert warehouse %s: %w", w.WarehouseID, err)
		}
	}

	orderStmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO orders (
		order_id, date, product_id, quantity, delivery_deadline, status, delivery_latitude, delivery_longitude
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed datasets: prepare order insert: %w", err)
	}
	defer orderStmt.Close()

	for _, o := range orders {
		_, err := orderStmt.ExecContext(ctx,
			o.OrderID, o.Date.Format("2006-01-02 15:04:05"), o.ProductID, o.Quantity,
			o.Deadline.Format("2006-01-02 15:04:05"), o.Status,
			nanToNull(o.Delivery.Lat), nanToNull(o.Delivery.Lon))
		if err != nil {
			return fmt.Errorf("seed datasets: insert order %s: %w", o.OrderID, err)
		}
	}

	stockStmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO inventory_levels (
		warehouse_id, product_id, current_stock
	)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed datasets: prepare stock insert: %w", err)
	}
	defer stockStmt.Close()

	for _, rec := range stock {
		if _, err := stockStmt.ExecContext(ctx, rec.WarehouseID, rec.ProductID, rec.Quantity); err != nil {
			return fmt.Errorf("seed datasets: insert stock %s/%s: %w", rec.WarehouseID, rec.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed datasets: commit tx: %w", err)
	}

	return nil
}
