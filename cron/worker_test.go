package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"katwate/models"
	"katwate/services/tasks"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	reminders []models.ReminderPayload
	err       error
}

func (r *recordingNotifier) NotifyReservation(context.Context, models.EnquiryEvent, string) error {
	return nil
}

func (r *recordingNotifier) NotifyEventEnquiry(context.Context, models.EnquiryEvent) error {
	return nil
}

func (r *recordingNotifier) SendGuestReminder(_ context.Context, p models.ReminderPayload) error {
	r.reminders = append(r.reminders, p)
	return r.err
}

func TestHandleReminderTaskSendsNotification(t *testing.T) {
	n := &recordingNotifier{}
	p := models.ReminderPayload{GuestID: "g7", Name: "Ravi", CheckIn: "2026-10-25"}
	task, _, err := tasks.NewReminderTask(p, time.Now())
	require.NoError(t, err)

	require.NoError(t, handleReminderTask(n)(context.Background(), task))
	assert.Equal(t, []models.ReminderPayload{p}, n.reminders)
}

func TestHandleReminderTaskPropagatesSendFailure(t *testing.T) {
	n := &recordingNotifier{err: errors.New("fcm down")}
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{GuestID: "g7"}, time.Now())
	require.NoError(t, err)

	err = handleReminderTask(n)(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleReminderTaskSkipsRetryOnBadPayload(t *testing.T) {
	n := &recordingNotifier{}
	err := handleReminderTask(n)(context.Background(), asynq.NewTask(tasks.TypeSendReminder, []byte("nope")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Empty(t, n.reminders)
}

func TestMonitorRedisConnectionStopsAndClosesClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitorRedisConnection(ctx, client, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor kept running after cancel")
	}
	assert.EqualError(t, client.Ping(context.Background()).Err(), "redis: client is closed")
}
