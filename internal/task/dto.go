package task

import (
	"strings"
	"time"

	"github.com/Sohail342/task-management/internal/auth"
)

type CreateTaskDTO struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	AssignedToID *int64     `json:"assigned_to_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

func (d CreateTaskDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return auth.ValidationError{Msg: "title is required"}
	}
	if d.StartDate != nil && d.DueDate != nil && d.DueDate.Before(*d.StartDate) {
		return auth.ValidationError{Msg: "due_date cannot be before start_date"}
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (d UpdateStatusDTO) Validate() error {
	switch d.Status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	}
	return auth.ValidationError{Msg: "status must be one of Pending, In Progress, Completed"}
}

type CreateDependantDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (d CreateDependantDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return auth.ValidationError{Msg: "title is required"}
	}
	return nil
}

type CreateRemarkDTO struct {
	Remark string `json:"remark"`
}

func (d CreateRemarkDTO) Validate() error {
	if strings.TrimSpace(d.Remark) == "" {
		return auth.ValidationError{Msg: "remark is required"}
	}
	return nil
}

type EscalateDTO struct {
	Reason string `json:"reason,omitempty"`
}
