package domain

import "fmt"

// Units of one product held at one warehouse.
type StockRecord struct {
	WarehouseID string
	ProductID   string
	Quantity    int
}

// Mutable stock view the allocation engine depletes as it commits
// allocations. Construct with NewLedger; the source slice is copied so
// callers never observe depletion.
type Ledger struct {
	records []StockRecord
}

func NewLedger(records []StockRecord) *Ledger {
	cp := make([]StockRecord, len(records))
	copy(cp, records)
	return &Ledger{records: cp}
}

// Stock rows for one product, in dataset order.
func (l *Ledger) Candidates(productID string) []StockRecord {
	var out []StockRecord
	for _, r := range l.records {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// Remove quantity units of a product from one warehouse's row.
// Stock never goes negative; asking for more than the row holds is an error.
func (l *Ledger) Deplete(warehouseID, productID string, quantity int) error {
	for i := range l.records {
		r := &l.records[i]
		if r.WarehouseID != warehouseID || r.ProductID != productID {
			continue
		}
		if r.Quantity < quantity {
			return fmt.Errorf("deplete stock: warehouse %s holds %d units of %s, need %d", warehouseID, r.Quantity, productID, quantity)
		}
		r.Quantity -= quantity
		return nil
	}
	return fmt.Errorf("deplete stock: no record for warehouse %s product %s", warehouseID, productID)
}

// Snapshot of the remaining rows.
func (l *Ledger) Records() []StockRecord {
	cp := make([]StockRecord, len(l.records))
	copy(cp, l.records)
	return cp
}
