package tasks

import (
	"testing"
	"time"

	"katwate/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTaskRoundTrip(t *testing.T) {
	p := models.ReminderPayload{GuestID: "g1", Name: "Asha", Email: "asha@example.com", CheckIn: "2026-10-21"}
	task, opts, err := NewReminderTask(p, time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Len(t, opts, 4)

	got, err := ParseReminder(task)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, "reminder:g1:2026-10-21", ReminderTaskID(p))
}

func TestParseReminderRejectsBadPayload(t *testing.T) {
	_, err := ParseReminder(asynq.NewTask(TypeSendReminder, []byte("{")))
	assert.Error(t, err)

	_, err = ParseReminder(asynq.NewTask(TypeSendReminder, []byte(`{"name":"x"}`)))
	assert.Error(t, err)
}
