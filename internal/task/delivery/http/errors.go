package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

// Request-level validation errors for this delivery layer.
var (
	errMissingInput      = errors.New("text, lines, or records are required")
	errMissingFile       = errors.New("csv file upload is required")
	errBadCSV            = errors.New("csv file could not be parsed")
	errMissingTaskColumn = errors.New("csv must contain a 'task' column")
)

// respondError translates domain errors into client-facing responses.
// Input problems come back as 400 with the domain message; anything
// else is a 500 that never leaks internals.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrNoRecords):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
