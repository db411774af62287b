package services

import (
	"context"
	"time"

	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/errs"
	"github.com/drujensen/taskapi/internal/domain/events"
	"github.com/drujensen/taskapi/internal/domain/interfaces"

	"go.uber.org/zap"
)

// ActionRequiredMessage is returned whenever a task would be stored without an action.
const ActionRequiredMessage = "The task text field is required"

type TaskService interface {
	ListTasks(ctx context.Context) ([]*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, action string) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) (*entities.Task, error)
}

type taskService struct {
	taskRepo interfaces.TaskRepository
	logger   *zap.Logger
}

func NewTaskService(taskRepo interfaces.TaskRepository, logger *zap.Logger) *taskService {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context) (tasks []*entities.Task, err error) {
	defer observeOperation("list", time.Now(), &err)

	tasks, err = s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (task *entities.Task, err error) {
	defer observeOperation("get", time.Now(), &err)

	if id == "" {
		return nil, errs.ValidationErrorf("task ID is required")
	}

	task, err = s.taskRepo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) CreateTask(ctx context.Context, action string) (task *entities.Task, err error) {
	defer observeOperation("create", time.Now(), &err)

	if action == "" {
		return nil, errs.ValidationErrorf(ActionRequiredMessage)
	}

	task = entities.NewTask(action)
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Task created", zap.String("task_id", task.ID))
	events.PublishTaskEvent(events.TaskCreated, task)
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, patch entities.TaskPatch) (task *entities.Task, err error) {
	defer observeOperation("update", time.Now(), &err)

	if id == "" {
		return nil, errs.ValidationErrorf("task ID is required")
	}

	task, err = s.taskRepo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if !patch.Apply(task) {
		return task, nil
	}
	if task.Action == "" {
		return nil, errs.ValidationErrorf(ActionRequiredMessage)
	}

	task.UpdatedAt = time.Now()
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		s.logger.Error("Failed to update task", zap.String("task_id", id), zap.Error(err))
		return nil, err
	}

	events.PublishTaskEvent(events.TaskUpdated, task)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) (task *entities.Task, err error) {
	defer observeOperation("delete", time.Now(), &err)

	if id == "" {
		return nil, errs.ValidationErrorf("task ID is required")
	}

	task, err = s.taskRepo.DeleteTask(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Task deleted", zap.String("task_id", id))
	events.PublishTaskEvent(events.TaskDeleted, task)
	return task, nil
}

// verify interface implementation
var _ TaskService = &taskService{}
