package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"healthmate/internal/models"
	"healthmate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatsCache is the dashboard-stats cache as the controllers see it.
type StatsCache interface {
	GetDashboardStats(ctx context.Context, userID uint, dest interface{}) (bool, error)
	StoreDashboardStats(ctx context.Context, userID uint, stats interface{}, ttl time.Duration) error
	InvalidateDashboardStats(ctx context.Context, userID uint) error
}

type HealthLogController struct {
	repo  repository.HealthLogRepository
	cache StatsCache
	log   *zap.Logger
}

func NewHealthLogController(repo repository.HealthLogRepository, cache StatsCache, log *zap.Logger) *HealthLogController {
	return &HealthLogController{repo: repo, cache: cache, log: log}
}

// CreateHealthLog godoc
// @Summary Create a health log
// @Description Record one day's symptoms, meals, exercise, sleep, hydration and mood
// @Tags logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param log body models.HealthLog true "Health log data"
// @Success 201 {object} map[string]interface{} "Health log created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/logs [post]
func (hc *HealthLogController) CreateHealthLog(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var healthLog models.HealthLog
	if err := c.ShouldBindJSON(&healthLog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Ownership is never taken from the body.
	healthLog.UserID = userID
	if healthLog.ID == "" {
		healthLog.ID = uuid.NewString()
	}

	if err := healthLog.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid health log",
			"error":   err.Error(),
		})
		return
	}

	if err := hc.repo.Create(&healthLog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create health log",
			"error":   err.Error(),
		})
		return
	}

	hc.invalidateStats(c, userID)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Health log created successfully",
		"data":    healthLog,
	})
}

// GetHealthLogs godoc
// @Summary List the user's health logs
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of logs, newest first"
// @Success 200 {object} map[string]interface{} "Health logs retrieved successfully"
// @Router /api/logs [get]
func (hc *HealthLogController) GetHealthLogs(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	logs, err := hc.repo.FindAllByUserID(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve health logs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health logs retrieved successfully",
		"data":    logs,
	})
}

// GetHealthLogByID godoc
// @Summary Get one health log
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Health log ID"
// @Success 200 {object} map[string]interface{} "Health log retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Health log not found"
// @Router /api/logs/{id} [get]
func (hc *HealthLogController) GetHealthLogByID(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	healthLog, err := hc.repo.FindByID(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Health log not found",
			"error":   "No health log exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health log retrieved successfully",
		"data":    healthLog,
	})
}

// DeleteHealthLog godoc
// @Summary Delete a health log
// @Description Delete a log and its latest insight
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Health log ID"
// @Success 200 {object} map[string]interface{} "Health log deleted successfully"
// @Failure 404 {object} map[string]interface{} "Health log not found"
// @Router /api/logs/{id} [delete]
func (hc *HealthLogController) DeleteHealthLog(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := hc.repo.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Health log not found",
				"error":   "No health log exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete health log",
			"error":   err.Error(),
		})
		return
	}

	hc.invalidateStats(c, userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health log deleted successfully",
		"data":    nil,
	})
}

func (hc *HealthLogController) invalidateStats(c *gin.Context, userID uint) {
	if hc.cache == nil {
		return
	}
	if err := hc.cache.InvalidateDashboardStats(c.Request.Context(), userID); err != nil {
		hc.log.Warn("failed to invalidate cached stats",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}
