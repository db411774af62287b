package entities

import (
	"testing"
)

func TestNewTask(t *testing.T) {
	task := NewTask("buy milk")

	if task.Action != "buy milk" {
		t.Errorf("Expected action %q, got %q", "buy milk", task.Action)
	}
	if task.ID != "" {
		t.Errorf("Expected empty ID before persisting, got %s", task.ID)
	}
	if task.CreatedAt.IsZero() || !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("Expected matching non-zero timestamps, got %v and %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestTaskPatch_Apply(t *testing.T) {
	task := &Task{ID: "1", Action: "a"}

	if (TaskPatch{}).Apply(task) {
		t.Error("Expected empty patch to report no change")
	}
	if task.Action != "a" {
		t.Errorf("Expected action to stay %q, got %q", "a", task.Action)
	}

	b := "b"
	if !(TaskPatch{Action: &b}).Apply(task) {
		t.Error("Expected patch to report a change")
	}
	if task.Action != "b" {
		t.Errorf("Expected action %q, got %q", "b", task.Action)
	}
	if task.ID != "1" {
		t.Errorf("Expected ID to be untouched, got %s", task.ID)
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("Expected zero patch to be empty")
	}
	empty := ""
	if (TaskPatch{Action: &empty}).IsEmpty() {
		t.Error("Expected patch with an explicit empty action to be non-empty")
	}
}
