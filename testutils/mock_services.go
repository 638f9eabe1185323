package testutils

import (
	"time"

	"cybertask-app/cybertask/database"
	"cybertask-app/cybertask/models"
	"cybertask-app/cybertask/utils/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTaskService mocks the TaskServiceInterface for route testing
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) GetTasks(db *database.Database, callerID uuid.UUID, filter models.TaskFilter) ([]models.Task, error) {
	args := m.Called(db, callerID, filter)
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskService) GetTaskById(db *database.Database, callerID uuid.UUID, id string) (models.Task, error) {
	args := m.Called(db, callerID, id)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) CreateTask(db *database.Database, callerID uuid.UUID, input models.TaskInput) (models.Task, error) {
	args := m.Called(db, callerID, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(db *database.Database, callerID uuid.UUID, id string, input models.TaskInput) (models.Task, error) {
	args := m.Called(db, callerID, id, input)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(db *database.Database, callerID uuid.UUID, id string) error {
	args := m.Called(db, callerID, id)
	return args.Error(0)
}

func (m *MockTaskService) MarkCompleted(db *database.Database, callerID uuid.UUID, id string) (models.Task, error) {
	args := m.Called(db, callerID, id)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockTaskService) GetSummary(db *database.Database, callerID uuid.UUID) (models.TaskSummary, error) {
	args := m.Called(db, callerID)
	return args.Get(0).(models.TaskSummary), args.Error(1)
}

// MockAuthService mocks the AuthServiceInterface for route testing
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(db *database.Database, input models.SignUpInput) (models.User, error) {
	args := m.Called(db, input)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockAuthService) Login(db *database.Database, email, password string) (string, models.User, error) {
	args := m.Called(db, email, password)
	return args.String(0), args.Get(1).(models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*token.SessionClaims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*token.SessionClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

func (m *MockAuthService) SessionExpiration() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockUserService mocks the UserServiceInterface for route testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserById(db *database.Database, callerID uuid.UUID, id string) (models.User, error) {
	args := m.Called(db, callerID, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(db *database.Database, callerID uuid.UUID, id string, input models.ProfileInput) (models.User, error) {
	args := m.Called(db, callerID, id, input)
	return args.Get(0).(models.User), args.Error(1)
}
