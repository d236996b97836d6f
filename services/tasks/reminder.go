package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"katwate/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderRetention keeps finished reminder tasks inspectable for a day.
const ReminderRetention = 24 * time.Hour

// NewReminderTask builds the guest reminder task due at fireAt. One task id
// per guest and check-in date; asynq rejects a second one with
// ErrTaskIDConflict.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload)),
		asynq.MaxRetry(5),
		asynq.Retention(ReminderRetention),
	}
	return task, opts, nil
}

func ReminderTaskID(p models.ReminderPayload) string {
	return fmt.Sprintf("reminder:%s:%s", p.GuestID, p.CheckIn)
}

// ParseReminder decodes a reminder task payload.
func ParseReminder(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	if p.GuestID == "" {
		return p, fmt.Errorf("invalid reminder payload: missing guest id")
	}
	return p, nil
}
