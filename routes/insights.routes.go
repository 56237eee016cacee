package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterInsightsRoutes(router *gin.Engine, auth gin.HandlerFunc, insightsController *controllers.InsightsController) {
	insightRoutes := router.Group("/api/ai-insights")
	insightRoutes.Use(auth)
	{
		insightRoutes.POST("", insightsController.GenerateInsights)
		insightRoutes.GET("/:logId", insightsController.GetLatestInsight)
	}
}
