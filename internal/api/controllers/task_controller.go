package apicontrollers

import (
	"net/http"
	"strings"

	"github.com/drujensen/taskapi/internal/domain/errs"
	"github.com/drujensen/taskapi/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TaskController struct {
	logger      *zap.Logger
	taskService services.TaskService
}

func NewTaskController(logger *zap.Logger, taskService services.TaskService) *TaskController {
	return &TaskController{
		logger:      logger,
		taskService: taskService,
	}
}

// RegisterRoutes registers all task-related routes with Echo
func (c *TaskController) RegisterRoutes(e *echo.Group) {
	e.GET("/tasks", c.ListTasks)
	e.POST("/tasks", c.CreateTask)
	e.GET("/tasks/:id", c.GetTask)
	e.PUT("/tasks/:id", c.UpdateTask)
	e.PATCH("/tasks/:id", c.UpdateTask)
	e.DELETE("/tasks/:id", c.DeleteTask)
}

// ListTasks godoc
// @Summary List all tasks
// @Description Retrieves every task in insertion order.
// @Tags tasks
// @Produce json
// @Success 200 {array} entities.Task "Successfully retrieved list of tasks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx echo.Context) error {
	tasks, err := c.taskService.ListTasks(ctx.Request().Context())
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary Get a task by ID
// @Description Retrieves a task by its ID.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} entities.Task "Successfully retrieved task"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/tasks/{id} [get]
func (c *TaskController) GetTask(ctx echo.Context) error {
	task, err := c.taskService.GetTask(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, task)
}

// CreateTask godoc
// @Summary Create a new task
// @Description Creates a task from a JSON or URL-encoded body.
// @Tags tasks
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body CreateTaskRequest true "Task to create"
// @Success 201 {object} entities.Task "Successfully created task"
// @Failure 400 {object} ErrorResponse "Missing action or invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx echo.Context) error {
	var req CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return c.handleError(ctx, err)
	}

	task, err := c.taskService.CreateTask(ctx.Request().Context(), req.Action)
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary Update an existing task
// @Description Overwrites the supplied fields of a task. Omitted fields are unchanged.
// @Tags tasks
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to update"
// @Success 200 {object} entities.Task "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Empty action or invalid request body"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/tasks/{id} [put]
// @Router /api/tasks/{id} [patch]
func (c *TaskController) UpdateTask(ctx echo.Context) error {
	req, err := bindUpdateRequest(ctx)
	if err != nil {
		return c.badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return c.handleError(ctx, err)
	}

	task, err := c.taskService.UpdateTask(ctx.Request().Context(), ctx.Param("id"), req.Patch())
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Deletes a task by its ID and returns the removed task.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} DeleteTaskResponse "Successfully deleted task"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx echo.Context) error {
	task, err := c.taskService.DeleteTask(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted",
		Task:    task,
	})
}

// bindUpdateRequest decodes a partial update. URL-encoded bodies are read
// directly so an omitted field stays distinguishable from an empty one.
func bindUpdateRequest(ctx echo.Context) (*UpdateTaskRequest, error) {
	req := &UpdateTaskRequest{}
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationForm) || strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		params, err := ctx.FormParams()
		if err != nil {
			return nil, err
		}
		if values, ok := params["action"]; ok && len(values) > 0 {
			action := values[0]
			req.Action = &action
		}
		return req, nil
	}

	if err := ctx.Bind(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (c *TaskController) badRequest(ctx echo.Context, err error) error {
	c.logger.Warn("Invalid request body", zap.Error(err))
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

// handleError maps domain errors onto status codes and returns them in a consistent format
func (c *TaskController) handleError(ctx echo.Context, err error) error {
	switch err.(type) {
	case *errs.ValidationError:
		c.logger.Warn("Validation failed", zap.Error(err))
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case *errs.NotFoundError:
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	default:
		c.logger.Error("Error occurred", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
