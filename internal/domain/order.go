package domain

import "time"

// Order statuses as they appear in datasets. The allocation sort compares
// the raw status string ascending, so Pending naturally sorts ahead of
// Urgent; any other value orders by the same rule.
const (
	StatusPending = "Pending"
	StatusUrgent  = "Urgent"
)

// Customer demand for a quantity of a single product at one delivery
// location. Deadline gates which orders enter an allocation run; the run
// itself never inspects it.
type Order struct {
	OrderID   string
	Date      time.Time
	ProductID string
	Quantity  int
	Deadline  time.Time
	Status    string
	Delivery  Coordinates
}

// Reports whether the order still needs allocation.
func (o Order) Actionable() bool {
	return o.Status == StatusPending || o.Status == StatusUrgent
}
