package entities

import (
	"time"
)

type Task struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Action    string    `json:"action" bson:"action"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TaskPatch carries a partial update. A nil field was not supplied.
type TaskPatch struct {
	Action *string
}

func NewTask(action string) *Task {
	now := time.Now()
	return &Task{
		Action:    action,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply overwrites the supplied fields and reports whether anything changed.
func (p TaskPatch) Apply(task *Task) bool {
	changed := false
	if p.Action != nil && *p.Action != task.Action {
		task.Action = *p.Action
		changed = true
	}
	return changed
}

func (p TaskPatch) IsEmpty() bool {
	return p.Action == nil
}
