package task

import "time"

type Task struct {
	ID                int64      `gorm:"primaryKey"`
	Title             string     `gorm:"column:title;not null"`
	Description       string     `gorm:"column:description"`
	AssignedToID      *int64     `gorm:"column:assigned_to_id"`
	AssignedByID      *int64     `gorm:"column:assigned_by_id"`
	StartDate         time.Time  `gorm:"column:start_date"`
	DueDate           *time.Time `gorm:"column:due_date"`
	Status            string     `gorm:"column:status;default:Pending"`
	EscalationFlagged bool       `gorm:"column:escalation_flagged;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}

// DependantTask is a sub-task an employee attaches to their assigned task.
type DependantTask struct {
	ID            int64     `gorm:"primaryKey"`
	Title         string    `gorm:"column:title;not null"`
	Description   string    `gorm:"column:description"`
	CreatedByID   int64     `gorm:"column:created_by_id;not null"`
	DependantToID int64     `gorm:"column:dependant_to_id;not null"`
	CreatedIn     time.Time `gorm:"column:created_in;autoCreateTime"`
}

func (DependantTask) TableName() string {
	return "dependant_tasks"
}

type TaskRemark struct {
	ID        int64     `gorm:"primaryKey"`
	TaskID    int64     `gorm:"column:task_id;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Source    string    `gorm:"column:source"`
	Remark    string    `gorm:"column:remark;not null"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime"`
}

func (TaskRemark) TableName() string {
	return "task_remarks"
}

type EscalationLog struct {
	ID            int64     `gorm:"primaryKey"`
	TaskID        int64     `gorm:"column:task_id;not null"`
	EscalatedByID int64     `gorm:"column:escalated_by_id;not null"`
	Reason        string    `gorm:"column:reason"`
	Timestamp     time.Time `gorm:"column:timestamp;autoCreateTime"`
}

func (EscalationLog) TableName() string {
	return "escalations"
}
