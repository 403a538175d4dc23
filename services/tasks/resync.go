package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"roofline/config"
)

const TypeScheduleResync = "schedule:resync"

// Enqueuer schedules the delayed snapshot resync that follows every
// deletion: wait briefly for the store to settle, then drop the cached
// availability grids so the next read refetches. One shot, no retry
// policy of its own.
type Enqueuer struct {
	client *asynq.Client
	delay  time.Duration
}

// NewEnqueuer builds the resync enqueuer from app configuration.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
		delay: time.Duration(config.AppConfig.ResyncDelaySeconds) * time.Second,
	}
}

// ScheduleResync enqueues the single delayed resync task.
func (e *Enqueuer) ScheduleResync(ctx context.Context) error {
	task := asynq.NewTask(TypeScheduleResync, nil)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.ProcessIn(e.delay), asynq.MaxRetry(0)); err != nil {
		return fmt.Errorf("failed to enqueue resync task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
