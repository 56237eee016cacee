package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(router *gin.Engine, auth gin.HandlerFunc, statsController *controllers.StatsController) {
	statsRoutes := router.Group("/api/stats")
	statsRoutes.Use(auth)
	{
		statsRoutes.GET("/dashboard", statsController.GetDashboardStats)
		statsRoutes.GET("/metrics", statsController.GetHealthMetrics)
	}
}
