package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthmate/internal/controllers"
	"healthmate/internal/mocks"
	"healthmate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func contextAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupHealthLogRoutes(userID uint) (*gin.Engine, *mocks.MockHealthLogRepository, *mocks.MockStatsCache) {
	mockRepo := new(mocks.MockHealthLogRepository)
	mockCache := new(mocks.MockStatsCache)
	controller := controllers.NewHealthLogController(mockRepo, mockCache, zap.NewNop())

	router := setupTestRouter()
	router.Use(contextAuth(userID))
	router.POST("/api/logs", controller.CreateHealthLog)
	router.GET("/api/logs", controller.GetHealthLogs)
	router.GET("/api/logs/:id", controller.GetHealthLogByID)
	router.DELETE("/api/logs/:id", controller.DeleteHealthLog)
	return router, mockRepo, mockCache
}

func validLogPayload() map[string]interface{} {
	return map[string]interface{}{
		"date":     "2024-01-01",
		"symptoms": "headache",
		"meals":    []string{"injera"},
		"exercise": map[string]interface{}{
			"type":            "walking",
			"durationMinutes": 30,
			"intensity":       "low",
		},
		"sleep": map[string]interface{}{
			"hours":   6.5,
			"quality": "fair",
		},
		"waterIntakeLiters": 1.5,
		"mood":              "good",
	}
}

func TestCreateHealthLog(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(map[string]interface{})
		setupMock      func(*mocks.MockHealthLogRepository, *mocks.MockStatsCache)
		expectedStatus int
	}{
		{
			name:   "successful creation",
			mutate: func(m map[string]interface{}) {},
			setupMock: func(repo *mocks.MockHealthLogRepository, cache *mocks.MockStatsCache) {
				repo.On("Create", mock.AnythingOfType("*models.HealthLog")).Return(nil)
				cache.On("InvalidateDashboardStats", mock.Anything, uint(1)).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid intensity",
			mutate:         func(m map[string]interface{}) { m["exercise"].(map[string]interface{})["intensity"] = "extreme" },
			setupMock:      func(repo *mocks.MockHealthLogRepository, cache *mocks.MockStatsCache) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid sleep quality",
			mutate:         func(m map[string]interface{}) { m["sleep"].(map[string]interface{})["quality"] = "amazing" },
			setupMock:      func(repo *mocks.MockHealthLogRepository, cache *mocks.MockStatsCache) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative water intake",
			mutate:         func(m map[string]interface{}) { m["waterIntakeLiters"] = -1.0 },
			setupMock:      func(repo *mocks.MockHealthLogRepository, cache *mocks.MockStatsCache) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed date",
			mutate:         func(m map[string]interface{}) { m["date"] = "January 1st" },
			setupMock:      func(repo *mocks.MockHealthLogRepository, cache *mocks.MockStatsCache) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, mockCache := setupHealthLogRoutes(1)
			tt.setupMock(mockRepo, mockCache)

			payload := validLogPayload()
			tt.mutate(payload)
			body, _ := json.Marshal(payload)

			req := httptest.NewRequest("POST", "/api/logs", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateHealthLogAssignsIDAndOwner(t *testing.T) {
	router, mockRepo, mockCache := setupHealthLogRoutes(42)

	var created *models.HealthLog
	mockRepo.On("Create", mock.AnythingOfType("*models.HealthLog")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.HealthLog) }).
		Return(nil)
	mockCache.On("InvalidateDashboardStats", mock.Anything, uint(42)).Return(nil)

	payload := validLogPayload()
	payload["userId"] = 999 // must be ignored
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/api/logs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, uint(42), created.UserID)
	assert.NotEmpty(t, created.ID)
}

func TestGetHealthLogs(t *testing.T) {
	router, mockRepo, _ := setupHealthLogRoutes(1)

	logs := []models.HealthLog{{ID: "log1", UserID: 1, Date: "2024-01-01"}}
	mockRepo.On("FindAllByUserID", uint(1), 0).Return(logs, nil)

	req := httptest.NewRequest("GET", "/api/logs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])
	mockRepo.AssertExpectations(t)
}

func TestGetHealthLogsRejectsBadLimit(t *testing.T) {
	router, _, _ := setupHealthLogRoutes(1)

	req := httptest.NewRequest("GET", "/api/logs?limit=-2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHealthLogByIDNotFound(t *testing.T) {
	router, mockRepo, _ := setupHealthLogRoutes(1)
	mockRepo.On("FindByID", uint(1), "missing").Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest("GET", "/api/logs/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHealthLog(t *testing.T) {
	router, mockRepo, mockCache := setupHealthLogRoutes(1)
	mockRepo.On("Delete", uint(1), "log1").Return(nil)
	mockCache.On("InvalidateDashboardStats", mock.Anything, uint(1)).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/logs/log1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestDeleteHealthLogNotFound(t *testing.T) {
	router, mockRepo, _ := setupHealthLogRoutes(1)
	mockRepo.On("Delete", uint(1), "missing").Return(gorm.ErrRecordNotFound)

	req := httptest.NewRequest("DELETE", "/api/logs/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
