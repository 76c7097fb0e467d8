package repositories

import (
	"time"

	"inventory-allocation-service/internal/domain"
)

// NewSampleDatasetRepository returns an in-memory repository preloaded with a
// small demo dataset. Order dates and deadlines are anchored to now so the
// pending queue never drains as the clock advances.
func NewSampleDatasetRepository(now time.Time) *MemoryDatasetRepository {
	repo := NewMemoryDatasetRepository()

	repo.WarehouseRows = []domain.Warehouse{
		{
			WarehouseID:  "W001",
			Name:         "Mumbai Central",
			Capacity:     10000,
			CurrentStock: 7500,
			Location:     "Mumbai",
			StorageCost:  1200,
			Coord:        domain.Coordinates{Lat: 19.0760, Lon: 72.8777},
		},
		{
			WarehouseID:  "W002",
			Name:         "Delhi North",
			Capacity:     8000,
			CurrentStock: 5200,
			Location:     "Delhi",
			StorageCost:  950,
			Coord:        domain.Coordinates{Lat: 28.7041, Lon: 77.1025},
		},
		{
			WarehouseID:  "W003",
			Name:         "Bangalore Tech Hub",
			Capacity:     12000,
			CurrentStock: 9100,
			Location:     "Bangalore",
			StorageCost:  1400,
			Coord:        domain.Coordinates{Lat: 12.9716, Lon: 77.5946},
		},
	}

	repo.OrderRows = []domain.Order{
		{
			OrderID:   "ORD001",
			Date:      now.AddDate(0, 0, -3),
			ProductID: "P001",
			Quantity:  500,
			Deadline:  now.AddDate(0, 0, 4),
			Status:    domain.StatusPending,
			Delivery:  domain.Coordinates{Lat: 18.5204, Lon: 73.8567},
		},
		{
			OrderID:   "ORD002",
			Date:      now.AddDate(0, 0, -2),
			ProductID: "P002",
			Quantity:  250,
			Deadline:  now.AddDate(0, 0, 2),
			Status:    domain.StatusUrgent,
			Delivery:  domain.Coordinates{Lat: 28.4595, Lon: 77.0266},
		},
		{
			OrderID:   "ORD003",
			Date:      now.AddDate(0, 0, -2),
			ProductID: "P001",
			Quantity:  300,
			Deadline:  now.AddDate(0, 0, 6),
			Status:    domain.StatusPending,
			Delivery:  domain.Coordinates{Lat: 13.0827, Lon: 80.2707},
		},
		{
			OrderID:   "ORD004",
			Date:      now.AddDate(0, 0, -1),
			ProductID: "P003",
			Quantity:  120,
			Deadline:  now.AddDate(0, 0, 3),
			Status:    domain.StatusUrgent,
			Delivery:  domain.Coordinates{Lat: 17.3850, Lon: 78.4867},
		},
		{
			OrderID:   "ORD005",
			Date:      now.AddDate(0, 0, -5),
			ProductID: "P002",
			Quantity:  80,
			Deadline:  now.AddDate(0, 0, 8),
			Status:    domain.StatusPending,
			Delivery:  domain.Coordinates{Lat: 22.5726, Lon: 88.3639},
		},
	}

	repo.StockRows = []domain.StockRecord{
		{WarehouseID: "W001", ProductID: "P001", Quantity: 900},
		{WarehouseID: "W001", ProductID: "P002", Quantity: 400},
		{WarehouseID: "W002", ProductID: "P001", Quantity: 350},
		{WarehouseID: "W002", ProductID: "P002", Quantity: 500},
		{WarehouseID: "W002", ProductID: "P003", Quantity: 150},
		{WarehouseID: "W003", ProductID: "P001", Quantity: 700},
		{WarehouseID: "W003", ProductID: "P003", Quantity: 300},
	}

	return repo
}
