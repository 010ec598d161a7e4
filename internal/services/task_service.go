package services

import (
	"errors"
	"fmt"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
)

var (
	ErrTaskNameRequired = errors.New("task name is required")
	ErrInvalidStatus    = errors.New("status must be one of: pending, in progress, completed")
	ErrInvalidPriority  = errors.New("priority must be one of: low, medium, high")
)

// TaskService handles renovation task business logic.
type TaskService struct {
	taskRepo  repository.TaskRepository
	ownership *OwnershipService
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, ownership *OwnershipService) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		ownership: ownership,
	}
}

func validTaskStatus(status models.TaskStatus) bool {
	switch status {
	case models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusCompleted:
		return true
	}
	return false
}

func validTaskPriority(priority models.TaskPriority) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	PropertyID uint64
	Name       string
	Status     models.TaskStatus
	Priority   models.TaskPriority
}

// CreateTask creates a task on a property the caller owns.
func (s *TaskService) CreateTask(userID uint64, input CreateTaskInput) (*models.Task, error) {
	if input.Name == "" {
		return nil, ErrTaskNameRequired
	}
	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !validTaskStatus(input.Status) {
		return nil, ErrInvalidStatus
	}
	if !validTaskPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}

	if _, err := s.ownership.Property(userID, input.PropertyID); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:     userID,
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Status:     input.Status,
		Priority:   input.Priority,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput is the allow-list of mutable task fields.
type UpdateTaskInput struct {
	Name     *string
	Status   *models.TaskStatus
	Priority *models.TaskPriority
}

// UpdateTask applies a partial update to a task on a property the caller owns.
func (s *TaskService) UpdateTask(userID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if input.Status != nil && !validTaskStatus(*input.Status) {
		return nil, ErrInvalidStatus
	}
	if input.Priority != nil && !validTaskPriority(*input.Priority) {
		return nil, ErrInvalidPriority
	}

	task, err := s.ownership.Task(userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// UpdateTaskStatus changes only the status of a task.
func (s *TaskService) UpdateTaskStatus(userID, taskID uint64, status models.TaskStatus) (*models.Task, error) {
	return s.UpdateTask(userID, taskID, UpdateTaskInput{Status: &status})
}

// DeleteTask removes a task on a property the caller owns.
func (s *TaskService) DeleteTask(userID, taskID uint64) error {
	task, err := s.ownership.Task(userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListTasks returns the caller's tasks.
func (s *TaskService) ListTasks(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListPropertyTasks returns the tasks of a property the caller owns.
func (s *TaskService) ListPropertyTasks(userID, propertyID uint64) ([]models.Task, error) {
	if _, err := s.ownership.Property(userID, propertyID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByPropertyID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
