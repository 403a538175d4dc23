// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appointmentRepo "roofline/database/repository/appointment"
	blockRuleRepo "roofline/database/repository/blockrule"
	"roofline/models"
	"roofline/utils"
)

// DefaultSchedulingService wires the pure engine to the stores. Every
// availability answer is computed from a snapshot fetched ahead of time
// (and cached briefly); only the booking path re-checks against fresh
// store state before writing.
type DefaultSchedulingService struct {
	ApptRepo    appointmentRepo.AppointmentRepository
	RuleRepo    blockRuleRepo.BlockRuleRepository
	Engine      *Engine
	Cache       *redis.Client
	Resync      ResyncScheduler
	SnapshotTTL time.Duration

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// loadSnapshot fetches the booking index and block rules for a date
// window. Rules are fetched unscoped: the engine's scope matching decides
// which apply to the region being asked about.
func (s *DefaultSchedulingService) loadSnapshot(ctx context.Context, state, from, to string) (Snapshot, error) {
	appts, err := s.ApptRepo.List(ctx, appointmentRepo.Filter{State: state, DateFrom: from, DateTo: to})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load appointments: %w", err)
	}
	rules, err := s.RuleRepo.List(ctx, blockRuleRepo.Filter{DateFrom: from, DateTo: to})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load block rules: %w", err)
	}
	return Snapshot{Appointments: appts, BlockRules: rules}, nil
}

// MonthAvailability computes the blocked flag for every date of the
// month. Grids are cached briefly; any mutation invalidates the cache.
func (s *DefaultSchedulingService) MonthAvailability(ctx context.Context, year, month int, state string) (*MonthGrid, error) {
	logger := utils.GetLogger()
	key := fmt.Sprintf("%smonth:%s:%04d-%02d", utils.ScheduleCachePrefix, state, year, month)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var grid MonthGrid
			if err := json.Unmarshal([]byte(data), &grid); err == nil {
				return &grid, nil
			}
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	from := first.Format(models.DateLayout)
	to := next.Format(models.DateLayout)

	snap, err := s.loadSnapshot(ctx, state, from, to)
	if err != nil {
		return nil, err
	}

	today := s.now()
	grid := &MonthGrid{Year: year, Month: month, State: state}
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		date := d.Format(models.DateLayout)
		grid.Days = append(grid.Days, DayStatus{
			Date:    date,
			Blocked: s.Engine.DateBlocked(snap, date, state, today),
		})
	}

	if s.Cache != nil {
		if data, err := json.Marshal(grid); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.SnapshotTTL).Err(); err != nil {
				logger.Warn("failed to cache month grid", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return grid, nil
}

// DayAvailability computes per-slot availability and remaining capacity
// for the time-slot picker. Always fresh; the picker is the last thing a
// rep sees before submitting.
func (s *DefaultSchedulingService) DayAvailability(ctx context.Context, date, state string) (*DaySlots, error) {
	snap, err := s.loadSnapshot(ctx, state, date, nextDate(date))
	if err != nil {
		return nil, err
	}

	out := &DaySlots{Date: date, State: state}
	for _, slot := range s.Engine.Hours() {
		out.Slots = append(out.Slots, SlotStatus{
			Slot:        slot,
			Unavailable: s.Engine.SlotUnavailable(snap, date, slot, state),
			Remaining:   s.Engine.RemainingCapacity(snap, date, slot, state),
		})
	}
	return out, nil
}

// InvalidateSnapshots drops every cached availability grid.
func (s *DefaultSchedulingService) InvalidateSnapshots(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	keys, err := s.Cache.Keys(ctx, utils.ScheduleCachePrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list snapshot keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to drop snapshot keys: %w", err)
	}
	return nil
}

// invalidate is the write-path variant: failures are logged, not
// returned, because the write itself already succeeded.
func (s *DefaultSchedulingService) invalidate(ctx context.Context) {
	if err := s.InvalidateSnapshots(ctx); err != nil {
		utils.GetLogger().Warn("snapshot invalidation failed", zap.Error(err))
	}
}

// nextDate returns the day after the given date string, for exclusive
// range upper bounds. Malformed input falls back to the input itself,
// which yields an empty range and therefore a fully blocked answer.
func nextDate(date string) string {
	d, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, 1).Format(models.DateLayout)
}
