package ports

import (
	"context"

	"inventory-allocation-service/internal/domain"
)

// Port: a boundary for retrieving allocation datasets from a data source.
type DatasetRepository interface {
	// Retrieve all storage sites.
	Warehouses(ctx context.Context) ([]domain.Warehouse, error)
	// Retrieve all orders regardless of status.
	Orders(ctx context.Context) ([]domain.Order, error)
	// Retrieve per-product stock rows.
	Stock(ctx context.Context) ([]domain.StockRecord, error)
}
