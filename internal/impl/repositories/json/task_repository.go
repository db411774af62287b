package repositories_json

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/errs"
	"github.com/drujensen/taskapi/internal/domain/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JsonTaskRepository struct {
	filePath string
	logger   *zap.Logger
	mu       sync.RWMutex
	data     []*entities.Task
}

func NewJSONTaskRepository(dataDir string, logger *zap.Logger) (*JsonTaskRepository, error) {
	filePath := filepath.Join(dataDir, ".taskapi", "tasks.json")
	repo := &JsonTaskRepository{
		filePath: filePath,
		logger:   logger,
		data:     []*entities.Task{},
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	logger.Info("Loaded tasks from file",
		zap.String("path", filePath),
		zap.String("count", humanize.Comma(int64(len(repo.data)))))
	return repo, nil
}

func (r *JsonTaskRepository) load() error {
	data, err := os.ReadFile(r.filePath)
	if os.IsNotExist(err) {
		return nil // File doesn't exist yet, start with empty data
	}
	if err != nil {
		return errs.StoreErrorf("failed to read tasks.json: %v", err)
	}

	var tasks []*entities.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return errs.StoreErrorf("failed to unmarshal tasks.json: %v", err)
	}

	// Validate UUIDs
	for _, task := range tasks {
		if task.ID == "" {
			return errs.StoreErrorf("task is missing an ID")
		}
		if _, err := uuid.Parse(task.ID); err != nil {
			return errs.StoreErrorf("task has an invalid UUID: %v", err)
		}
	}

	if tasks != nil {
		r.data = tasks
	}
	return nil
}

// save must be called with the write lock held.
func (r *JsonTaskRepository) save() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return errs.StoreErrorf("failed to marshal tasks: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.filePath), 0755); err != nil {
		return errs.StoreErrorf("failed to create directory: %v", err)
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return errs.StoreErrorf("failed to write tasks.json: %v", err)
	}

	r.logger.Debug("Saved tasks", zap.String("size", humanize.Bytes(uint64(len(data)))))
	return nil
}

func (r *JsonTaskRepository) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasksCopy := make([]*entities.Task, len(r.data))
	for i, t := range r.data {
		task := *t
		tasksCopy[i] = &task
	}
	return tasksCopy, nil
}

func (r *JsonTaskRepository) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.data {
		if t.ID == id {
			task := *t
			return &task, nil
		}
	}
	return nil, errs.NotFoundErrorf("task not found: %s", id)
}

func (r *JsonTaskRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	stored.ID = uuid.New().String()

	r.data = append(r.data, &stored)
	if err := r.save(); err != nil {
		r.data = r.data[:len(r.data)-1]
		return err
	}

	task.ID = stored.ID
	return nil
}

func (r *JsonTaskRepository) UpdateTask(ctx context.Context, task *entities.Task) error {
	if err := validateID(task.ID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.data {
		if t.ID == task.ID {
			previous := r.data[i]
			stored := *task
			stored.CreatedAt = previous.CreatedAt
			r.data[i] = &stored
			if err := r.save(); err != nil {
				r.data[i] = previous
				return err
			}
			return nil
		}
	}
	return errs.NotFoundErrorf("task not found: %s", task.ID)
}

func (r *JsonTaskRepository) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.data {
		if t.ID == id {
			previous := slices.Clone(r.data)
			r.data = slices.Delete(r.data, i, i+1)
			if err := r.save(); err != nil {
				r.data = previous
				return nil, err
			}
			return t, nil
		}
	}
	return nil, errs.NotFoundErrorf("task not found: %s", id)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.StoreErrorf("invalid task id %q: %v", id, err)
	}
	return nil
}

var _ interfaces.TaskRepository = (*JsonTaskRepository)(nil)
