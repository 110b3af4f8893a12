package events

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeTaskEscalated = "task.escalated"

type TaskEscalatedEvent struct {
	BaseEvent
	TaskID        int64  `json:"task_id"`
	EscalatedByID int64  `json:"escalated_by_id"`
	Reason        string `json:"reason"`
}

func NewTaskEscalatedEvent(taskID, escalatedByID int64, reason string) *TaskEscalatedEvent {
	return &TaskEscalatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeTaskEscalated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"task_id":         taskID,
				"escalated_by_id": escalatedByID,
				"reason":          reason,
			},
		},
		TaskID:        taskID,
		EscalatedByID: escalatedByID,
		Reason:        reason,
	}
}
