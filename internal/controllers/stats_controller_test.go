package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthmate/internal/controllers"
	"healthmate/internal/mocks"
	"healthmate/internal/models"
	"healthmate/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStatsRoutes(userID uint, logRepo *mocks.MockHealthLogRepository, cache controllers.StatsCache) *gin.Engine {
	statsService := services.NewStatsService(logRepo)
	controller := controllers.NewStatsController(statsService, cache, zap.NewNop())

	router := setupTestRouter()
	router.Use(contextAuth(userID))
	router.GET("/api/stats/dashboard", controller.GetDashboardStats)
	router.GET("/api/stats/metrics", controller.GetHealthMetrics)
	return router
}

func TestGetDashboardStatsComputesAndCaches(t *testing.T) {
	logRepo := new(mocks.MockHealthLogRepository)
	cache := new(mocks.MockStatsCache)
	router := setupStatsRoutes(1, logRepo, cache)

	cache.On("GetDashboardStats", mock.Anything, uint(1), mock.Anything).Return(false, nil)
	logRepo.On("FindAllByUserID", uint(1), 0).Return([]models.HealthLog{}, nil)
	cache.On("StoreDashboardStats", mock.Anything, uint(1), mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest("GET", "/api/stats/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	logRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetDashboardStatsCacheHitSkipsRepository(t *testing.T) {
	logRepo := new(mocks.MockHealthLogRepository)
	cache := new(mocks.MockStatsCache)
	router := setupStatsRoutes(1, logRepo, cache)

	cache.On("GetDashboardStats", mock.Anything, uint(1), mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*services.DashboardStats)
			dest.TotalLogs = 12
			dest.HealthScore = 88
		}).
		Return(true, nil)

	req := httptest.NewRequest("GET", "/api/stats/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data services.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 12, response.Data.TotalLogs)
	assert.Equal(t, 88, response.Data.HealthScore)

	logRepo.AssertNotCalled(t, "FindAllByUserID", mock.Anything, mock.Anything)
}

func TestGetHealthMetricsDefaultWindow(t *testing.T) {
	logRepo := new(mocks.MockHealthLogRepository)
	router := setupStatsRoutes(1, logRepo, nil)

	logRepo.On("FindByUserIDAndDateRange", uint(1), mock.Anything, mock.Anything).
		Return([]models.HealthLog{}, nil)

	req := httptest.NewRequest("GET", "/api/stats/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []services.HealthMetrics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 7)
}

func TestGetHealthMetricsRejectsBadDays(t *testing.T) {
	logRepo := new(mocks.MockHealthLogRepository)
	router := setupStatsRoutes(1, logRepo, nil)

	req := httptest.NewRequest("GET", "/api/stats/metrics?days=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
