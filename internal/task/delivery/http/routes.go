package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/rank", mw.RateLimit(), h.RankText)
		tasks.POST("/rank/records", mw.RateLimit(), h.RankRecords)
		tasks.POST("/rank/csv", mw.RateLimit(), h.RankCSV)
	}
}
