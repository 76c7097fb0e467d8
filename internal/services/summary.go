package services

import (
	"math"

	"inventory-allocation-service/internal/domain"
)

// Summarize rolls a plan up into reporting figures: money and wall time
// rounded to two decimals, plus the share of visited orders that were
// fulfilled. The plan itself is never modified.
func Summarize(plan *domain.Plan) domain.Summary {
	fulfilled := plan.Fulfilled()
	total := fulfilled + len(plan.Unfulfilled)

	// With no orders in play nothing was missed.
	rate := 100.0
	if total > 0 {
		rate = 100 * float64(fulfilled) / float64(total)
	}

	status := plan.Status
	if status == "" {
		status = domain.PlanUnknown
	}

	return domain.Summary{
		TotalCost:       round2(plan.TotalCost),
		SolvingTime:     round2(plan.SolvingTime),
		Status:          status,
		FulfillmentRate: round2(rate),
		GeneratedAt:     plan.GeneratedAt,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
