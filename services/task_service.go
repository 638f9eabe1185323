package services

import (
	"errors"
	"time"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskServiceInterface is the task CRUD contract. Every operation takes the
// caller id and enforces ownership itself, so handlers cannot forget the
// check: unknown ids surface ErrTaskNotFound, ids owned by another user
// surface ErrForbidden.
type TaskServiceInterface interface {
	GetTasks(db *database.Database, callerID uuid.UUID, filter models.TaskFilter) ([]models.Task, error)
	GetTaskById(db *database.Database, callerID uuid.UUID, id string) (models.Task, error)
	CreateTask(db *database.Database, callerID uuid.UUID, input models.TaskInput) (models.Task, error)
	UpdateTask(db *database.Database, callerID uuid.UUID, id string, input models.TaskInput) (models.Task, error)
	DeleteTask(db *database.Database, callerID uuid.UUID, id string) error
	MarkCompleted(db *database.Database, callerID uuid.UUID, id string) (models.Task, error)
	GetSummary(db *database.Database, callerID uuid.UUID) (models.TaskSummary, error)
}

type TaskService struct{}

// getOwnedTask loads a task and checks it belongs to the caller. The 404/403
// split is deliberate: a non-owner probing a real id gets ErrForbidden, an
// unknown id gets ErrTaskNotFound.
func getOwnedTask(db *database.Database, callerID uuid.UUID, id string) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	if task.UserID != callerID {
		return models.Task{}, ErrForbidden
	}
	return task, nil
}

// parseDueDate converts the optional wire date into a timestamp. A missing
// or empty value clears the due date.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, FieldErrors{"due_date": "must be a valid RFC 3339 date-time"}
	}
	return &parsed, nil
}

func (s *TaskService) GetTasks(db *database.Database, callerID uuid.UUID, filter models.TaskFilter) ([]models.Task, error) {
	var tasks []models.Task
	query := db.DB.Where("user_id = ?", callerID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, callerID uuid.UUID, id string) (models.Task, error) {
	return getOwnedTask(db, callerID, id)
}

func (s *TaskService) CreateTask(db *database.Database, callerID uuid.UUID, input models.TaskInput) (models.Task, error) {
	if err := validateStruct(input); err != nil {
		return models.Task{}, err
	}

	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      callerID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    models.TaskPriority(input.Priority),
		Status:      models.TaskStatus(input.Status),
		DueDate:     dueDate,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask replaces every editable field wholesale. An input without a
// description or due date clears them; nothing is merged.
func (s *TaskService) UpdateTask(db *database.Database, callerID uuid.UUID, id string, input models.TaskInput) (models.Task, error) {
	task, err := getOwnedTask(db, callerID, id)
	if err != nil {
		return models.Task{}, err
	}

	if err := validateStruct(input); err != nil {
		return models.Task{}, err
	}

	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Priority = models.TaskPriority(input.Priority)
	task.Status = models.TaskStatus(input.Status)
	task.DueDate = dueDate

	// Save writes all columns; Updates would skip zero values and silently
	// turn the wholesale replace into a partial patch.
	if err := db.DB.Save(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, callerID uuid.UUID, id string) error {
	task, err := getOwnedTask(db, callerID, id)
	if err != nil {
		return err
	}

	// Hard delete: the model has no DeletedAt column, so the row is gone.
	return db.DB.Delete(&task).Error
}

// MarkCompleted moves a task to COMPLETED without touching any other field,
// regardless of its current status.
func (s *TaskService) MarkCompleted(db *database.Database, callerID uuid.UUID, id string) (models.Task, error) {
	task, err := getOwnedTask(db, callerID, id)
	if err != nil {
		return models.Task{}, err
	}

	if err := db.DB.Model(&task).Update("status", models.StatusCompleted).Error; err != nil {
		return models.Task{}, err
	}

	task.Status = models.StatusCompleted
	return task, nil
}

func (s *TaskService) GetSummary(db *database.Database, callerID uuid.UUID) (models.TaskSummary, error) {
	var summary models.TaskSummary
	now := time.Now().UTC()

	counts := []struct {
		dest  *int64
		query func(*gorm.DB) *gorm.DB
	}{
		{&summary.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&summary.Pending, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.StatusPending) }},
		{&summary.InProgress, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.StatusInProgress) }},
		{&summary.Completed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", models.StatusCompleted) }},
		{&summary.CriticalOpen, func(q *gorm.DB) *gorm.DB {
			return q.Where("priority = ? AND status <> ?", models.PriorityCritical, models.StatusCompleted)
		}},
		{&summary.DueSoon, func(q *gorm.DB) *gorm.DB {
			return q.Where("status <> ? AND due_date >= ? AND due_date <= ?",
				models.StatusCompleted, now, now.Add(models.DueSoonWindow))
		}},
		{&summary.Overdue, func(q *gorm.DB) *gorm.DB {
			return q.Where("status <> ? AND due_date IS NOT NULL AND due_date < ?",
				models.StatusCompleted, now)
		}},
	}

	for _, c := range counts {
		query := c.query(db.DB.Model(&models.Task{}).Where("user_id = ?", callerID))
		if err := query.Count(c.dest).Error; err != nil {
			return models.TaskSummary{}, err
		}
	}

	if err := db.DB.Where("user_id = ?", callerID).
		Order("created_at DESC").Limit(5).Find(&summary.Recent).Error; err != nil {
		return models.TaskSummary{}, err
	}

	return summary, nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
