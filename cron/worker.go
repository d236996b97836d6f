package cron

import (
	"context"
	"errors"
	"time"

	"katwate/config"
	"katwate/models"
	"katwate/services/notification"
	"katwate/services/tasks"
	"katwate/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderClient schedules guest reminders on the asynq queue.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpt())}
}

// EnqueueReminder schedules p for fireAt. A reminder already queued for the
// same stay is left in place.
func (c *ReminderClient) EnqueueReminder(ctx context.Context, p models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := tasks.NewReminderTask(p, fireAt)
	if err != nil {
		return err
	}
	info, err := c.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		utils.GetLogger().Info("Reminder already scheduled", zap.String("guestId", p.GuestID))
		return nil
	}
	if err != nil {
		return err
	}
	utils.GetLogger().Info("Reminder scheduled",
		zap.String("guestId", p.GuestID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

func (c *ReminderClient) Close() error {
	return c.client.Close()
}

// InitReminderWorker runs the async worker in background and returns the
// server so the caller can shut it down. The queue connection monitor stops
// when ctx is cancelled.
func InitReminderWorker(ctx context.Context, notifSvc notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	monitor := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	go monitorRedisConnection(ctx, monitor, 10*time.Second)

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Reminder worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		p, err := tasks.ParseReminder(task)
		if err != nil {
			logger.Error("Dropping reminder task", zap.Error(err))
			// Retrying cannot fix a bad payload.
			return errors.Join(err, asynq.SkipRetry)
		}

		logger.Info("Sending guest reminder", zap.String("guestId", p.GuestID), zap.String("checkIn", p.CheckIn))
		if err := notifSvc.SendGuestReminder(ctx, p); err != nil {
			logger.Error("Failed to send guest reminder", zap.String("guestId", p.GuestID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue database every interval to surface
// failures at runtime. It closes client once ctx is done.
func monitorRedisConnection(ctx context.Context, client *redis.Client, interval time.Duration) {
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				utils.GetLogger().Warn("Queue redis connection lost", zap.Error(err))
			}
		}
	}
}
