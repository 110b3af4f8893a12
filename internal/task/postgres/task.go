package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohail342/task-management/internal"
	taskDatamodel "github.com/Sohail342/task-management/internal/core/datamodel/task"
	"github.com/Sohail342/task-management/internal/task"
)

// TaskRepository implements the task.Repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *task.Task) (*task.Task, error) {
	row := task.ToDataModel(t)
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return task.FromDataModel(row), nil
}

func (r *TaskRepository) GetByID(id int64) (*task.Task, error) {
	var row taskDatamodel.Task
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, err
	}
	return task.FromDataModel(&row), nil
}

func (r *TaskRepository) ListAll() ([]*task.Task, error) {
	var rows []*taskDatamodel.Task
	if err := r.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return task.FromDataModelSlice(rows), nil
}

func (r *TaskRepository) ListByAssignee(userID int64) ([]*task.Task, error) {
	var rows []*taskDatamodel.Task
	err := r.db.Where("assigned_to_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return task.FromDataModelSlice(rows), nil
}

func (r *TaskRepository) Update(t *task.Task) error {
	return r.db.Save(task.ToDataModel(t)).Error
}

func (r *TaskRepository) CreateDependant(d *task.DependantTask) (*task.DependantTask, error) {
	row := &taskDatamodel.DependantTask{
		Title:         d.Title,
		Description:   d.Description,
		CreatedByID:   d.CreatedByID,
		DependantToID: d.DependantToID,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return &task.DependantTask{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		CreatedByID:   row.CreatedByID,
		DependantToID: row.DependantToID,
		CreatedIn:     row.CreatedIn,
	}, nil
}

func (r *TaskRepository) CreateRemark(rm *task.TaskRemark) (*task.TaskRemark, error) {
	row := &taskDatamodel.TaskRemark{
		TaskID: rm.TaskID,
		UserID: rm.UserID,
		Source: rm.Source,
		Remark: rm.Remark,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return &task.TaskRemark{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Source:    row.Source,
		Remark:    row.Remark,
		Timestamp: row.Timestamp,
	}, nil
}

func (r *TaskRepository) CreateEscalation(e *task.EscalationLog) (*task.EscalationLog, error) {
	row := &taskDatamodel.EscalationLog{
		TaskID:        e.TaskID,
		EscalatedByID: e.EscalatedByID,
		Reason:        e.Reason,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return &task.EscalationLog{
		ID:            row.ID,
		TaskID:        row.TaskID,
		EscalatedByID: row.EscalatedByID,
		Reason:        row.Reason,
		Timestamp:     row.Timestamp,
	}, nil
}
