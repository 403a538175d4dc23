package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"roofline/config"
	blockRuleRepo "roofline/database/repository/blockrule"
	"roofline/models"
	"roofline/services/scheduling"
	"roofline/services/tasks"
	"roofline/utils"
)

// InitResyncWorker runs the async worker that performs delayed snapshot
// resyncs in the background.
func InitResyncWorker(svc scheduling.SchedulingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeScheduleResync, handleResyncTask(svc))

	go func() {
		log.Println("[ResyncWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ResyncWorker] failed to start worker: %v", err)
		}
	}()
}

func handleResyncTask(svc scheduling.SchedulingService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		if err := svc.InvalidateSnapshots(ctx); err != nil {
			utils.GetLogger().Error("delayed resync failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Debug("delayed resync dropped cached snapshots")
		return nil
	}
}

// StartMaintenanceCron schedules the nightly purge of block rules whose
// date is already in the past. Those rules are inert (the lead-time
// check blocks past dates before rules are ever consulted), so this is
// housekeeping only.
func StartMaintenanceCron(ruleRepo blockRuleRepo.BlockRuleRepository) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := time.Now().UTC().Format(models.DateLayout)
		n, err := ruleRepo.DeleteBefore(ctx, today)
		if err != nil {
			logger.Error("block-rule purge failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("purged expired block rules", zap.Int64("count", n))
		}
	})
	if err != nil {
		logger.Error("failed to schedule maintenance cron", zap.Error(err))
		return c
	}

	c.Start()
	return c
}
