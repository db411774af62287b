package apicontrollers

import (
	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/errs"
	"github.com/drujensen/taskapi/internal/domain/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateTaskRequest is the body accepted by POST /api/tasks.
type CreateTaskRequest struct {
	Action string `json:"action" form:"action" validate:"required"`
}

// Validate reports a missing action as a ValidationError.
func (r *CreateTaskRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errs.ValidationErrorf(services.ActionRequiredMessage)
	}
	return nil
}

// UpdateTaskRequest is the body accepted by PUT and PATCH /api/tasks/{id}.
// Omitted fields are left unchanged.
type UpdateTaskRequest struct {
	Action *string `json:"action,omitempty" validate:"omitnil,min=1"`
}

func (r *UpdateTaskRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errs.ValidationErrorf(services.ActionRequiredMessage)
	}
	return nil
}

func (r *UpdateTaskRequest) Patch() entities.TaskPatch {
	return entities.TaskPatch{Action: r.Action}
}

// DeleteTaskResponse confirms a removal and echoes the removed task.
type DeleteTaskResponse struct {
	Message string         `json:"message"`
	Task    *entities.Task `json:"task"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
