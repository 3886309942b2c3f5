package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"salonbook/models"
)

const (
	TypeAppointmentReminder = "appointment:reminder"
	TypeExpireUnpaid        = "appointment:expire_unpaid"
)

// NewReminderTask builds the reminder email task for appointmentID, processed at fireAt.
func NewReminderTask(payload models.AppointmentTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	return newAppointmentTask(TypeAppointmentReminder, payload, fireAt)
}

// NewExpireUnpaidTask builds the task that releases an unpaid online booking at fireAt.
func NewExpireUnpaidTask(payload models.AppointmentTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	return newAppointmentTask(TypeExpireUnpaid, payload, fireAt)
}

func newAppointmentTask(taskType string, payload models.AppointmentTaskPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	payload.FireDate = fireAt.Format(time.RFC3339)
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(taskType, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		// one task of each type per appointment
		asynq.TaskID(fmt.Sprintf("%s:%s", taskType, payload.AppointmentID)),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// ParsePayload decodes a task created by this package.
func ParsePayload(task *asynq.Task) (models.AppointmentTaskPayload, error) {
	var p models.AppointmentTaskPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", task.Type(), err)
	}
	if p.AppointmentID == "" {
		return p, fmt.Errorf("invalid %s payload: missing appointmentId", task.Type())
	}
	return p, nil
}
