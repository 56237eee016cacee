package controllers

import (
	"context"
	"net/http"

	"healthmate/internal/insights"
	"healthmate/internal/models"
	"healthmate/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompletionClient is the hosted language-model service as the insight
// endpoint sees it: one prompt in, raw text out.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type InsightsController struct {
	repo   repository.InsightRepository
	client CompletionClient
	log    *zap.Logger
}

func NewInsightsController(repo repository.InsightRepository, client CompletionClient, log *zap.Logger) *InsightsController {
	return &InsightsController{repo: repo, client: client, log: log}
}

type generateInsightsRequest struct {
	HealthLog *models.HealthLog `json:"healthLog"`
}

// GenerateInsights godoc
// @Summary Generate AI wellness insights for a health log
// @Description Build a prompt from the submitted health log, call the completion service, validate the JSON reply and persist it as the log's latest insight
// @Tags insights
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body generateInsightsRequest true "Health log to analyze"
// @Success 200 {object} map[string]interface{} "Generated insights"
// @Failure 400 {object} map[string]interface{} "Health log is required"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to generate insights"
// @Router /api/ai-insights [post]
func (ic *InsightsController) GenerateInsights(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req generateInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HealthLog == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Health log is required"})
		return
	}
	healthLog := req.HealthLog

	prompt := insights.BuildPrompt(healthLog)

	responseText, err := ic.client.CreateChatCompletion(c.Request.Context(), insights.SystemPrompt, prompt)
	if err != nil {
		ic.log.Error("completion call failed",
			zap.Uint("user_id", userID.(uint)),
			zap.String("health_log_id", healthLog.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	insight, err := insights.ParseResponse(responseText)
	if err != nil {
		// Raw text stays server-side for diagnostics; the client only sees
		// the generic failure.
		ic.log.Error("failed to parse AI response",
			zap.Uint("user_id", userID.(uint)),
			zap.String("health_log_id", healthLog.ID),
			zap.String("raw_response", responseText),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	insight.UserID = userID.(uint)
	insight.HealthLogID = healthLog.ID

	if err := ic.repo.SaveLatest(insight); err != nil {
		ic.log.Error("failed to store insights",
			zap.Uint("user_id", userID.(uint)),
			zap.String("health_log_id", healthLog.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insight})
}

// GetLatestInsight godoc
// @Summary Get the stored latest insight for a health log
// @Tags insights
// @Produce json
// @Security ApiKeyAuth
// @Param logId path string true "Health log ID"
// @Success 200 {object} map[string]interface{} "Latest insight"
// @Failure 404 {object} map[string]interface{} "No insight generated yet"
// @Router /api/ai-insights/{logId} [get]
func (ic *InsightsController) GetLatestInsight(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	insight, err := ic.repo.FindLatest(userID.(uint), c.Param("logId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Insight not found",
			"error":   "No insight has been generated for this log",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insight})
}
