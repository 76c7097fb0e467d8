package repositories

import (
	"context"

	"inventory-allocation-service/internal/domain"
)

// In-memory implementation of the DatasetRepository port for tests and
// zero-configuration runs. Set Err to make every method fail with it.
type MemoryDatasetRepository struct {
	WarehouseRows []domain.Warehouse
	OrderRows     []domain.Order
	StockRows     []domain.StockRecord
	Err           error
}

func NewMemoryDatasetRepository() *MemoryDatasetRepository {
	return &MemoryDatasetRepository{}
}

func (m *MemoryDatasetRepository) Warehouses(ctx context.Context) ([]domain.Warehouse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Warehouse, len(m.WarehouseRows))
	copy(out, m.WarehouseRows)
	return out, nil
}

func (m *MemoryDatasetRepository) Orders(ctx context.Context) ([]domain.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Order, len(m.OrderRows))
	copy(out, m.OrderRows)
	return out, nil
}

func (m *MemoryDatasetRepository) Stock(ctx context.Context) ([]domain.StockRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.StockRecord, len(m.StockRows))
	copy(out, m.StockRows)
	return out, nil
}
