package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
	"github.com/Sohail342/task-management/internal/core/events"
)

type Repository interface {
	Create(t *Task) (*Task, error)
	GetByID(id int64) (*Task, error)
	ListAll() ([]*Task, error)
	ListByAssignee(userID int64) ([]*Task, error)
	Update(t *Task) error
	CreateDependant(d *DependantTask) (*DependantTask, error)
	CreateRemark(rm *TaskRemark) (*TaskRemark, error)
	CreateEscalation(e *EscalationLog) (*EscalationLog, error)
}

// AssigneeChecker verifies that a task can be assigned to a user.
type AssigneeChecker interface {
	GetByID(userID int64) (*auth.User, error)
}

// Service handles task business logic. All callers arrive through the
// access gate, so every method takes the already-authenticated user.
type Service struct {
	repo     Repository
	users    AssigneeChecker
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, users AssigneeChecker, eventBus *events.EventBus, logger *slog.Logger) *Service {
	s := &Service{
		repo:     repo,
		users:    users,
		eventBus: eventBus,
		logger:   logger,
	}
	eventBus.Subscribe(events.EventTypeTaskEscalated, s.recordEscalation)
	return s
}

// Create registers a new task assigned by the requester.
func (s *Service) Create(requester *auth.User, dto CreateTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.AssignedToID != nil {
		assignee, err := s.users.GetByID(*dto.AssignedToID)
		if err != nil || assignee == nil {
			return nil, internal.ErrUserNotFound
		}
		if !assignee.IsActive {
			return nil, internal.NewValidationError("cannot assign task to an inactive user", internal.ErrCodeValidationFailed)
		}
	}

	start := time.Now()
	if dto.StartDate != nil {
		start = *dto.StartDate
	}

	created, err := s.repo.Create(&Task{
		Title:        dto.Title,
		Description:  dto.Description,
		AssignedToID: dto.AssignedToID,
		AssignedByID: &requester.ID,
		StartDate:    start,
		DueDate:      dto.DueDate,
		Status:       StatusPending,
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to create task", err)
	}

	s.logger.Info("task created", "task_id", created.ID, "assigned_by", requester.ID)
	return created, nil
}

// List returns all tasks for admins and supervisors, and only the
// requester's assigned tasks for everyone else.
func (s *Service) List(requester *auth.User) ([]*Task, error) {
	if requester.HasRole(auth.RoleAdmin, auth.RoleSupervisor) {
		return s.repo.ListAll()
	}
	return s.repo.ListByAssignee(requester.ID)
}

func (s *Service) GetByID(requester *auth.User, taskID int64) (*Task, error) {
	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !requester.HasRole(auth.RoleAdmin, auth.RoleSupervisor) && !t.IsAssignedTo(requester.ID) {
		return nil, internal.ErrNotPermitted
	}

	return t, nil
}

// UpdateStatus moves a task through its lifecycle. Only the assignee or
// an admin may change status; completed tasks are terminal.
func (s *Service) UpdateStatus(requester *auth.User, taskID int64, dto UpdateStatusDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && !t.IsAssignedTo(requester.ID) {
		return nil, internal.ErrNotPermitted
	}

	if !t.CanSetStatus(dto.Status) {
		return nil, internal.NewValidationError("invalid status transition", internal.ErrCodeInvalidStatus)
	}

	t.Status = dto.Status
	if err := s.repo.Update(t); err != nil {
		return nil, internal.NewInternalError("failed to update task", err)
	}

	s.logger.Info("task status updated", "task_id", t.ID, "status", t.Status, "user_id", requester.ID)
	return t, nil
}

// AddDependant attaches a sub-task to the requester's own assigned task.
func (s *Service) AddDependant(requester *auth.User, taskID int64, dto CreateDependantDTO) (*DependantTask, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if !t.IsAssignedTo(requester.ID) {
		return nil, internal.ErrNotPermitted
	}

	created, err := s.repo.CreateDependant(&DependantTask{
		Title:         dto.Title,
		Description:   dto.Description,
		CreatedByID:   requester.ID,
		DependantToID: t.ID,
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to create dependant task", err)
	}

	s.logger.Info("dependant task created", "task_id", t.ID, "dependant_id", created.ID)
	return created, nil
}

// AddRemark records an annotation from a supervisor or compliance user;
// the source tag follows the requester's role.
func (s *Service) AddRemark(requester *auth.User, taskID int64, dto CreateRemarkDTO) (*TaskRemark, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	source := RemarkSourceSupervisor
	if requester.Role == auth.RoleCompliance {
		source = RemarkSourceCompliance
	}

	created, err := s.repo.CreateRemark(&TaskRemark{
		TaskID: t.ID,
		UserID: requester.ID,
		Source: source,
		Remark: dto.Remark,
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to create remark", err)
	}

	return created, nil
}

// Escalate flags a task and publishes the escalation event; the
// subscriber writes the escalation log row before the call returns.
func (s *Service) Escalate(ctx context.Context, requester *auth.User, taskID int64, dto EscalateDTO) (*Task, error) {
	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	t.EscalationFlagged = true
	t.Status = StatusEscalated
	if err := s.repo.Update(t); err != nil {
		return nil, internal.NewInternalError("failed to escalate task", err)
	}

	event := events.NewTaskEscalatedEvent(t.ID, requester.ID, dto.Reason)
	if err := s.eventBus.PublishSync(ctx, event); err != nil {
		return nil, internal.NewInternalError("failed to record escalation", err)
	}

	s.logger.Info("task escalated", "task_id", t.ID, "escalated_by", requester.ID)
	return t, nil
}

func (s *Service) recordEscalation(_ context.Context, event events.Event) error {
	escalated, ok := event.(*events.TaskEscalatedEvent)
	if !ok {
		return nil
	}

	_, err := s.repo.CreateEscalation(&EscalationLog{
		TaskID:        escalated.TaskID,
		EscalatedByID: escalated.EscalatedByID,
		Reason:        escalated.Reason,
	})
	return err
}
