package services

import (
	"time"

	"inventory-allocation-service/internal/domain"
)

// PendingOrders returns the orders an allocation run should consider:
// still actionable and not past their delivery deadline.
func PendingOrders(orders []domain.Order, now time.Time) []domain.Order {
	out := []domain.Order{}
	for _, o := range orders {
		if o.Actionable() && !o.Deadline.Before(now) {
			out = append(out, o)
		}
	}
	return out
}

// UrgentOrders returns the orders flagged urgent.
func UrgentOrders(orders []domain.Order) []domain.Order {
	out := []domain.Order{}
	for _, o := range orders {
		if o.Status == domain.StatusUrgent {
			out = append(out, o)
		}
	}
	return out
}

// OrderHistory returns orders no longer in play, either because their
// status moved past actionable or their deadline passed.
func OrderHistory(orders []domain.Order, now time.Time) []domain.Order {
	out := []domain.Order{}
	for _, o := range orders {
		if !o.Actionable() || o.Deadline.Before(now) {
			out = append(out, o)
		}
	}
	return out
}
