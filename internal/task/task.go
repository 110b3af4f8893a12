package task

import (
	"time"

	taskDatamodel "github.com/Sohail342/task-management/internal/core/datamodel/task"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusEscalated  = "Escalated"
)

// Remark sources mirror who may annotate a task.
const (
	RemarkSourceSupervisor = "Supervisor"
	RemarkSourceCompliance = "Compliance"
	RemarkSourceHR         = "HR"
)

type Task struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	AssignedToID      *int64     `json:"assigned_to_id,omitempty"`
	AssignedByID      *int64     `json:"assigned_by_id,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Status            string     `json:"status"`
	EscalationFlagged bool       `json:"escalation_flagged"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (t *Task) IsAssignedTo(userID int64) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

func (t *Task) CanSetStatus(status string) bool {
	if t.Status == StatusCompleted {
		return false
	}
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type DependantTask struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CreatedByID   int64     `json:"created_by_id"`
	DependantToID int64     `json:"dependant_to_id"`
	CreatedIn     time.Time `json:"created_in"`
}

type TaskRemark struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    int64     `json:"user_id"`
	Source    string    `json:"source"`
	Remark    string    `json:"remark"`
	Timestamp time.Time `json:"timestamp"`
}

type EscalationLog struct {
	ID            int64     `json:"id"`
	TaskID        int64     `json:"task_id"`
	EscalatedByID int64     `json:"escalated_by_id"`
	Reason        string    `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func ToDataModel(t *Task) *taskDatamodel.Task {
	return &taskDatamodel.Task{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		AssignedToID:      t.AssignedToID,
		AssignedByID:      t.AssignedByID,
		StartDate:         t.StartDate,
		DueDate:           t.DueDate,
		Status:            t.Status,
		EscalationFlagged: t.EscalationFlagged,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func FromDataModel(row *taskDatamodel.Task) *Task {
	return &Task{
		ID:                row.ID,
		Title:             row.Title,
		Description:       row.Description,
		AssignedToID:      row.AssignedToID,
		AssignedByID:      row.AssignedByID,
		StartDate:         row.StartDate,
		DueDate:           row.DueDate,
		Status:            row.Status,
		EscalationFlagged: row.EscalationFlagged,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*taskDatamodel.Task) []*Task {
	result := make([]*Task, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
