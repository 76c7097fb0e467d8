package domain

// Storage site that can serve order allocations.
// Capacity and CurrentStock describe the site total across all products;
// per-product availability lives in StockRecord rows. StorageCost is the
// per-unit storage rate fed to the cost model; a rate that failed to parse
// travels as NaN, which keeps the site unselectable without failing the run.
type Warehouse struct {
	WarehouseID  string
	Name         string
	Capacity     int
	CurrentStock int
	Location     string
	StorageCost  float64
	Coord        Coordinates
}

// Fraction of site capacity currently occupied, in [0, 1] for sane data.
// Unknown or non-positive capacity reports zero.
func (w Warehouse) Utilization() float64 {
	if w.Capacity <= 0 {
		return 0
	}
	return float64(w.CurrentStock) / float64(w.Capacity)
}
