package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"inventory-allocation-service/internal/api/dto"
	"inventory-allocation-service/internal/platform/metrics"
	"inventory-allocation-service/internal/ports"
	"inventory-allocation-service/internal/services"
)

type PlanHandler struct {
	Repo             ports.DatasetRepository
	Store            ports.PlanStore
	DefaultTimeLimit time.Duration
}

// Plans dispatches the /plans collection: POST runs an allocation,
// GET lists stored plan summaries.
func (h *PlanHandler) Plans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// create runs the allocation engine over the current datasets and persists
// the resulting plan. It coordinates repository access, the optimization
// pass and the plan store.
func (h *PlanHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.RunPlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	timeLimit := h.DefaultTimeLimit
	if req.TimeLimitSeconds != nil {
		if *req.TimeLimitSeconds < 0 {
			writeError(w, r, http.StatusBadRequest, "time_limit_seconds must be zero or positive")
			return
		}
		timeLimit = time.Duration(*req.TimeLimitSeconds * float64(time.Second))
	}

	svcReq := services.RunAllocationRequest{
		TimeLimit:        timeLimit,
		IncludeAllOrders: req.IncludeAllOrders,
	}

	rec, err := services.RunAllocation(r.Context(), svcReq, h.Repo, h.Store)
	if err != nil {
		metrics.AllocationRuns.WithLabelValues("failed").Inc()
		log.Printf("run allocation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.AllocationRuns.WithLabelValues("completed").Inc()
	metrics.OrdersFulfilled.Add(float64(rec.Plan.Fulfilled()))
	metrics.OrdersUnfulfilled.Add(float64(len(rec.Plan.Unfulfilled)))
	metrics.SolvingTime.Observe(rec.Plan.SolvingTime)

	writeJSON(w, r, http.StatusOK, planResponse(rec))
}

func (h *PlanHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	recs, err := h.Store.List(r.Context(), limit)
	if err != nil {
		log.Printf("list plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlansResponse{Plans: make([]dto.PlanSummaryResponse, 0, len(recs))}
	for _, rec := range recs {
		res.Plans = append(res.Plans, planSummaryResponse(rec))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get serves a single stored plan by id (/plans/{id}).
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/plans/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}

	rec, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, ports.ErrPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		log.Printf("get plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, planResponse(rec))
}

func planSummaryResponse(rec ports.PlanRecord) dto.PlanSummaryResponse {
	return dto.PlanSummaryResponse{
		PlanID:             rec.Plan.PlanID,
		Status:             rec.Summary.Status,
		TotalCost:          rec.Summary.TotalCost,
		SolvingTimeSeconds: rec.Summary.SolvingTime,
		FulfillmentRate:    rec.Summary.FulfillmentRate,
		GeneratedAt:        rec.Summary.GeneratedAt,
	}
}

// planResponse renders a stored record. Cost, time and rate come from the
// summary so list and detail views report identical figures; allocations
// keep warehouse first-allocation order.
func planResponse(rec ports.PlanRecord) dto.PlanResponse {
	warehouses := make([]dto.WarehouseAllocationsResponse, 0, len(rec.Plan.WarehouseOrder))
	for _, wid := range rec.Plan.WarehouseOrder {
		entries := rec.Plan.Allocations[wid]
		allocs := make([]dto.AllocationResponse, 0, len(entries))
		for _, a := range entries {
			allocs = append(allocs, dto.AllocationResponse{
				OrderID:    a.OrderID,
				Quantity:   a.Quantity,
				Cost:       a.Cost,
				DistanceKm: a.Distance,
			})
		}
		warehouses = append(warehouses, dto.WarehouseAllocationsResponse{
			WarehouseID: wid,
			Allocations: allocs,
		})
	}

	unfulfilled := make([]dto.UnfulfilledResponse, 0, len(rec.Plan.Unfulfilled))
	for _, u := range rec.Plan.Unfulfilled {
		unfulfilled = append(unfulfilled, dto.UnfulfilledResponse{
			OrderID:  u.OrderID,
			Quantity: u.Quantity,
			Reason:   u.Reason,
		})
	}

	return dto.PlanResponse{
		PlanID:             rec.Plan.PlanID,
		Status:             rec.Plan.Status,
		TotalCost:          rec.Summary.TotalCost,
		SolvingTimeSeconds: rec.Summary.SolvingTime,
		FulfillmentRate:    rec.Summary.FulfillmentRate,
		GeneratedAt:        rec.Plan.GeneratedAt,
		Warehouses:         warehouses,
		Unfulfilled:        unfulfilled,
	}
}
