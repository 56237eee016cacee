package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthLogRoutes(router *gin.Engine, auth gin.HandlerFunc, logController *controllers.HealthLogController) {
	logRoutes := router.Group("/api/logs")
	logRoutes.Use(auth)
	{
		logRoutes.POST("", logController.CreateHealthLog)
		logRoutes.GET("", logController.GetHealthLogs)
		logRoutes.GET("/:id", logController.GetHealthLogByID)
		logRoutes.DELETE("/:id", logController.DeleteHealthLog)
	}
}
