package events

import (
	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/kelindar/event"
)

// Event types
const (
	TaskEventType uint32 = 1
)

type TaskEventKind string

const (
	TaskCreated TaskEventKind = "created"
	TaskUpdated TaskEventKind = "updated"
	TaskDeleted TaskEventKind = "deleted"
)

// TaskEventData wraps a task change for publishing
type TaskEventData struct {
	Kind TaskEventKind
	Task *entities.Task
}

// Type implements the Event interface
func (t TaskEventData) Type() uint32 {
	return TaskEventType
}

// PublishTaskEvent publishes a task change event. The task is copied so
// subscribers never share memory with the caller.
func PublishTaskEvent(kind TaskEventKind, task *entities.Task) {
	snapshot := *task
	event.Emit(TaskEventData{Kind: kind, Task: &snapshot})
}

// SubscribeToTaskEvents subscribes to task change events
func SubscribeToTaskEvents(handler func(data TaskEventData)) func() {
	return event.On(handler)
}
