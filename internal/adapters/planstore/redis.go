package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"inventory-allocation-service/internal/ports"
)

const planIndexKey = "plan:index"

// Redis-backed implementation of the PlanStore port. Each run is stored as
// a JSON value under plan:<id>; plan:index lists ids newest first. A zero
// ttl keeps records forever.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("plan store: parse redis url: %w", err)
	}
	return &Redis{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func (r *Redis) Save(ctx context.Context, rec ports.PlanRecord) error {
	if rec.Plan == nil || rec.Plan.PlanID == "" {
		return errors.New("save plan: missing plan id")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("save plan: marshal record: %w", err)
	}

	key := planKey(rec.Plan.PlanID)
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save plan: set %s: %w", key, err)
	}
	if err := r.rdb.LPush(ctx, planIndexKey, rec.Plan.PlanID).Err(); err != nil {
		return fmt.Errorf("save plan: push index: %w", err)
	}

	return nil
}

func (r *Redis) Get(ctx context.Context, planID string) (ports.PlanRecord, error) {
	data, err := r.rdb.Get(ctx, planKey(planID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.PlanRecord{}, ports.ErrPlanNotFound
	}
	if err != nil {
		return ports.PlanRecord{}, fmt.Errorf("get plan %s: %w", planID, err)
	}

	var rec ports.PlanRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ports.PlanRecord{}, fmt.Errorf("get plan %s: unmarshal record: %w", planID, err)
	}
	return rec, nil
}

func (r *Redis) List(ctx context.Context, limit int) ([]ports.PlanRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := r.rdb.LRange(ctx, planIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list plans: range index: %w", err)
	}

	out := make([]ports.PlanRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := r.Get(ctx, id)
		if errors.Is(err, ports.ErrPlanNotFound) {
			// Expired values can linger in the index; skip them.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func planKey(id string) string { return "plan:" + id }
