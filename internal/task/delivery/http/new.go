package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	RankText(c *gin.Context)
	RankRecords(c *gin.Context)
	RankCSV(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
