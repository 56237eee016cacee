package mocks

import (
	"context"
	"time"

	"healthmate/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockHealthLogRepository struct {
	mock.Mock
}

func (m *MockHealthLogRepository) Create(log *models.HealthLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockHealthLogRepository) FindByID(userID uint, id string) (*models.HealthLog, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthLog), args.Error(1)
}

func (m *MockHealthLogRepository) FindAllByUserID(userID uint, limit int) ([]models.HealthLog, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.HealthLog), args.Error(1)
}

func (m *MockHealthLogRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.HealthLog, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.HealthLog), args.Error(1)
}

func (m *MockHealthLogRepository) Delete(userID uint, id string) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockHealthLogRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) SaveLatest(insight *models.AIInsight) error {
	args := m.Called(insight)
	return args.Error(0)
}

func (m *MockInsightRepository) FindLatest(userID uint, healthLogID string) (*models.AIInsight, error) {
	args := m.Called(userID, healthLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AIInsight), args.Error(1)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) CreateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetDashboardStats(ctx context.Context, userID uint, dest interface{}) (bool, error) {
	args := m.Called(ctx, userID, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatsCache) StoreDashboardStats(ctx context.Context, userID uint, stats interface{}, ttl time.Duration) error {
	args := m.Called(ctx, userID, stats, ttl)
	return args.Error(0)
}

func (m *MockStatsCache) InvalidateDashboardStats(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
