package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents how urgent a task is (LOW, NORMAL, HIGH, CRITICAL)
type TaskPriority string

// Task priorities
const (
	PriorityLow      TaskPriority = "LOW"
	PriorityNormal   TaskPriority = "NORMAL"
	PriorityHigh     TaskPriority = "HIGH"
	PriorityCritical TaskPriority = "CRITICAL"
)

// TaskPriorityFromString converts a string to a TaskPriority
func TaskPriorityFromString(priorityStr string) (TaskPriority, error) {
	switch priorityStr {
	case "LOW":
		return PriorityLow, nil
	case "NORMAL":
		return PriorityNormal, nil
	case "HIGH":
		return PriorityHigh, nil
	case "CRITICAL":
		return PriorityCritical, nil
	default:
		return "", errors.New("invalid task priority")
	}
}

// TaskStatus represents where a task is in its lifecycle
type TaskStatus string

// Task statuses
const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusArchived   TaskStatus = "ARCHIVED"
)

// TaskStatusFromString converts a string to a TaskStatus
func TaskStatusFromString(statusStr string) (TaskStatus, error) {
	switch statusStr {
	case "PENDING":
		return StatusPending, nil
	case "IN_PROGRESS":
		return StatusInProgress, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "ARCHIVED":
		return StatusArchived, nil
	default:
		return "", errors.New("invalid task status")
	}
}

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE;" json:"user_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'NORMAL'" json:"priority"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	DueDate     *time.Time   `json:"due_date"`
	CreatedAt   time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

// TaskInput is the payload accepted by the create and update endpoints.
// Updates replace every editable field wholesale: omitted description or
// due_date clear the stored values rather than preserving them.
type TaskInput struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"required,oneof=LOW NORMAL HIGH CRITICAL"`
	Status      string  `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED ARCHIVED"`
	DueDate     *string `json:"due_date" validate:"omitempty"`
}

// TaskFilter narrows a task listing by exact status and/or priority match.
type TaskFilter struct {
	Status   *TaskStatus
	Priority *TaskPriority
}

// TaskSummary holds the aggregate counts rendered on the dashboard.
type TaskSummary struct {
	Total        int64  `json:"total"`
	Pending      int64  `json:"pending"`
	InProgress   int64  `json:"in_progress"`
	Completed    int64  `json:"completed"`
	CriticalOpen int64  `json:"critical_open"`
	DueSoon      int64  `json:"due_soon"`
	Overdue      int64  `json:"overdue"`
	Recent       []Task `json:"recent"`
}

// DueSoonWindow is how far ahead a due date counts as "due soon".
const DueSoonWindow = 24 * time.Hour

// IsOverdue reports whether the task has a due date in the past and is not
// yet completed.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return t.DueDate.Before(now)
}

// IsDueSoon reports whether the task is due within the next 24 hours, is not
// already overdue, and is not completed.
func (t *Task) IsDueSoon(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	return !t.DueDate.Before(now) && !t.DueDate.After(now.Add(DueSoonWindow))
}
