package controllers

import (
	"net/http"
	"strconv"
	"time"

	"healthmate/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const statsCacheTTL = 5 * time.Minute

type StatsController struct {
	stats *services.StatsService
	cache StatsCache
	log   *zap.Logger
}

func NewStatsController(stats *services.StatsService, cache StatsCache, log *zap.Logger) *StatsController {
	return &StatsController{stats: stats, cache: cache, log: log}
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Aggregates over the whole journal: totals, streak, averages and health score
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Router /api/stats/dashboard [get]
func (sc *StatsController) GetDashboardStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if sc.cache != nil {
		var cached services.DashboardStats
		hit, err := sc.cache.GetDashboardStats(c.Request.Context(), userID, &cached)
		if err != nil {
			sc.log.Warn("stats cache read failed", zap.Uint("user_id", userID), zap.Error(err))
		} else if hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Dashboard statistics retrieved successfully",
				"data":    cached,
			})
			return
		}
	}

	stats, err := sc.stats.BuildDashboardStats(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute dashboard statistics",
			"error":   err.Error(),
		})
		return
	}

	if sc.cache != nil {
		if err := sc.cache.StoreDashboardStats(c.Request.Context(), userID, stats, statsCacheTTL); err != nil {
			sc.log.Warn("stats cache write failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard statistics retrieved successfully",
		"data":    stats,
	})
}

// GetHealthMetrics godoc
// @Summary Get the per-day metric series for charts
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Window size in days (default 7, max 90)"
// @Success 200 {object} map[string]interface{} "Metric series"
// @Router /api/stats/metrics [get]
func (sc *StatsController) GetHealthMetrics(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid days parameter",
				"error":   "days must be a positive integer",
			})
			return
		}
		days = parsed
	}

	series, err := sc.stats.BuildMetricsSeries(userID, days, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute health metrics",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Health metrics retrieved successfully",
		"data":    series,
	})
}
